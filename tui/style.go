package tui

import "github.com/charmbracelet/lipgloss"

// Styles used throughout the inspector.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleHeaderField = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))

	styleCursor = lipgloss.NewStyle().
			Background(lipgloss.Color("24")).
			Foreground(lipgloss.Color("255"))

	styleKey = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleTableValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleScalarValue = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleFilterPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)
