package preview

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	themeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	tabStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tabActive    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Underline(true)
	kickerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	chipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
