package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	folioerrors "github.com/ibrahimlogs/folio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load builds the effective configuration: defaults, overlaid with the YAML
// file at path when it exists, overlaid with environment overrides, then
// validated. An empty path means "defaults plus environment".
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, folioerrors.NewParseError(path, 0, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, folioerrors.NewParseError(path, extractLine(err), err)
		}
	}

	applyEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overlays FOLIO_* environment variables onto the configuration.
func applyEnv(cfg *Config) {
	if v := os.Getenv("FOLIO_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("FOLIO_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FOLIO_CONTENT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ContentTTL = Duration(d)
		}
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
