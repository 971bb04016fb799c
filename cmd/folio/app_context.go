package main

import (
	"github.com/ibrahimlogs/folio/internal/config"
	"github.com/ibrahimlogs/folio/internal/content"
	"github.com/ibrahimlogs/folio/internal/logger"
	"github.com/ibrahimlogs/folio/internal/siteapi"
)

// appContext bundles the pieces every subcommand needs: config, logger, the
// API client, and the content store built on top of it.
type appContext struct {
	cfg    *config.Config
	log    *logger.Logger
	client *siteapi.Client
	store  *content.Store
}

func newAppContext(flags *rootFlags) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.HumanReadable})
	if err != nil {
		return nil, err
	}

	client := siteapi.New(siteapi.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout.Std(),
		Logger:  log,
	})

	store := content.NewStore(content.Options{
		Fetcher: client,
		Logger:  log,
		TTL:     cfg.Server.ContentTTL.Std(),
	})

	return &appContext{cfg: cfg, log: log, client: client, store: store}, nil
}
