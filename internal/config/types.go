// Package config loads and validates the folio configuration file.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "90s" or "5m" decode.
type Duration time.Duration

// UnmarshalYAML parses a duration string such as "10s" or "5m".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the root of a folio configuration file.
type Config struct {
	API    APIConfig    `yaml:"api" validate:"required"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig points at the remote content API.
type APIConfig struct {
	BaseURL string   `yaml:"base_url" validate:"required,http_url"`
	Timeout Duration `yaml:"timeout" validate:"min=0"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr         string   `yaml:"addr" validate:"required"`
	ContentTTL   Duration `yaml:"content_ttl" validate:"min=0"`
	ReadTimeout  Duration `yaml:"read_timeout" validate:"min=0"`
	WriteTimeout Duration `yaml:"write_timeout" validate:"min=0"`
	DefaultTheme string   `yaml:"default_theme" validate:"omitempty,theme_key"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://api.ibrahimlogs.me",
			Timeout: Duration(10 * time.Second),
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ContentTTL:   Duration(60 * time.Second),
			ReadTimeout:  Duration(10 * time.Second),
			WriteTimeout: Duration(30 * time.Second),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
