package preview

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ibrahimlogs/folio/internal/content"
)

// Run starts the interactive preview. Without a terminal on stdout it prints
// a single non-interactive frame instead, so piping the command still works.
func Run(ctx context.Context, store *content.Store) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printOnce(ctx, os.Stdout, store)
	}

	program := tea.NewProgram(NewModel(ctx, store), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// printOnce fetches once and writes every section as plain text.
func printOnce(ctx context.Context, w io.Writer, store *content.Store) error {
	snap := store.Refresh(ctx)

	m := NewModel(ctx, store)
	m.applySnapshot(snap)
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		m.width = width
	}

	fmt.Fprintf(w, "theme: %s\n\n", m.key)
	for i := range sectionNames {
		m.section = i
		fmt.Fprintf(w, "== %s ==\n%s\n", sectionNames[i], m.renderSection())
	}
	return nil
}
