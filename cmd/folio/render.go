package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibrahimlogs/folio/internal/render"
	"github.com/ibrahimlogs/folio/internal/theme"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var (
		asHTML   bool
		themeArg string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch content once and print the canonical model or themed HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			snap := app.store.Refresh(cmd.Context())
			key := snap.Key
			if themeArg != "" {
				if key, err = theme.ParseKey(themeArg); err != nil {
					return err
				}
			}
			model := app.store.Model(cmd.Context(), key)

			if asHTML {
				renderer, err := render.NewHTMLRenderer(key)
				if err != nil {
					return err
				}
				return renderer.Render(cmd.OutOrStdout(), model)
			}

			out, err := json.MarshalIndent(map[string]any{"theme": key, "content": model}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "Emit themed HTML instead of canonical JSON")
	cmd.Flags().StringVarP(&themeArg, "theme", "t", "", "Force a theme (v1..v4) instead of the document's choice")

	return cmd
}
