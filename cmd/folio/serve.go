package main

import (
	"github.com/spf13/cobra"

	"github.com/ibrahimlogs/folio/internal/render"
	"github.com/ibrahimlogs/folio/internal/server"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			if addr != "" {
				app.cfg.Server.Addr = addr
			}

			registry, err := render.Registry()
			if err != nil {
				return err
			}

			srv := server.New(server.Options{
				Store:    app.store,
				Sender:   app.client,
				Registry: registry,
				Logger:   app.log,
				Config:   app.cfg.Server,
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
