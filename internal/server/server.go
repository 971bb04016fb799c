// Package server exposes the portfolio over HTTP: themed pages, the
// canonical content JSON, and the contact proxy.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ibrahimlogs/folio/internal/config"
	"github.com/ibrahimlogs/folio/internal/contact"
	"github.com/ibrahimlogs/folio/internal/content"
	"github.com/ibrahimlogs/folio/internal/logger"
	"github.com/ibrahimlogs/folio/internal/theme"
)

// Server wires the content store, the theme registry, and the contact
// sender behind a chi router.
type Server struct {
	store    *content.Store
	sender   contact.Sender
	registry *theme.Registry
	log      *logger.Logger
	cfg      config.ServerConfig
}

// Options configures a Server.
type Options struct {
	Store    *content.Store
	Sender   contact.Sender
	Registry *theme.Registry
	Logger   *logger.Logger
	Config   config.ServerConfig
}

// New creates a Server.
func New(opts Options) *Server {
	return &Server{
		store:    opts.Store,
		sender:   opts.Sender,
		registry: opts.Registry,
		log:      opts.Logger.WithComponent("server"),
		cfg:      opts.Config,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleHome)
	r.Get("/{theme:v[1-4]}", s.handleTheme)
	r.Get("/api/content.json", s.handleContentJSON)
	r.Post("/contact", s.handleContact)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// ListenAndServe runs the server until ctx is cancelled or SIGINT/SIGTERM
// arrives, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout.Std(),
		WriteTimeout: s.cfg.WriteTimeout.Std(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(map[string]any{"addr": s.cfg.Addr}).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout.Std())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
