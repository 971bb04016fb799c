// Package preview renders the portfolio content model in the terminal so
// edits made in the CMS can be checked without a browser.
package preview

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/content"
	"github.com/ibrahimlogs/folio/internal/jsondoc"
	"github.com/ibrahimlogs/folio/internal/mapper"
	"github.com/ibrahimlogs/folio/internal/theme"
)

// refreshDoneMsg delivers the snapshot a re-fetch produced.
type refreshDoneMsg struct {
	snap content.Snapshot
}

var sectionNames = []string{"hero", "about", "projects", "skills", "experience", "contact", "footer"}

// Model contains the Bubbletea state for the content preview.
type Model struct {
	ctx   context.Context
	store *content.Store

	key      theme.Key
	forced   bool
	doc      jsondoc.Value
	model    canonical.Model
	section  int
	loading  bool
	loaded   bool
	width    int
	spinner  spinner.Model
	quitting bool
}

// NewModel constructs the preview model. Content loads on Init.
func NewModel(ctx context.Context, store *content.Store) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		ctx:     ctx,
		store:   store,
		key:     theme.V1,
		loading: true,
		width:   80,
		spinner: sp,
	}
}

// Init kicks off the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
}

// refreshCmd re-fetches through the store; stale responses are discarded by
// the store's generation guard, so mashing r is harmless.
func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{snap: m.store.Refresh(m.ctx)}
	}
}

func (m *Model) applySnapshot(snap content.Snapshot) {
	if !m.forced {
		m.key = snap.Key
	}
	m.doc = snap.Document
	m.remap()
	m.loaded = true
	m.loading = false
}

// remap re-derives the canonical model after a theme change or refresh.
func (m *Model) remap() {
	m.model = mapper.ForTheme(m.key)(m.doc)
}

