package preview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ibrahimlogs/folio/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.applySnapshot(msg.snap)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.refreshCmd())

	case "tab", "right", "l":
		m.section = (m.section + 1) % len(sectionNames)
		return m, nil

	case "shift+tab", "left", "h":
		m.section = (m.section - 1 + len(sectionNames)) % len(sectionNames)
		return m, nil

	case "1", "2", "3", "4":
		key, err := theme.ParseKey("v" + msg.String())
		if err != nil {
			return m, nil
		}
		m.key = key
		m.forced = true
		m.remap()
		return m, nil

	case "0":
		// Back to whatever the document selects.
		m.forced = false
		m.key = theme.ResolveFromDocument(m.doc)
		m.remap()
		return m, nil
	}

	return m, nil
}
