package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	docStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)

	systemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	userLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	botLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	citationStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	pageHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	badgeEmptyStyle     = lipgloss.NewStyle().Faint(true)
	badgeUploadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	badgeReadyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badgeFailedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
