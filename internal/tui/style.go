package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	styleFocusedPane = stylePane.
				BorderForeground(lipgloss.Color("34"))

	styleGroupHeader = lipgloss.NewStyle().
				Foreground(lipgloss.Color("228")).
				Bold(true)

	styleCursor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	styleActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleSpeaker = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))
)
