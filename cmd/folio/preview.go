package main

import (
	"github.com/spf13/cobra"

	"github.com/ibrahimlogs/folio/internal/preview"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the portfolio content in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return preview.Run(cmd.Context(), app.store)
		},
	}

	return cmd
}
