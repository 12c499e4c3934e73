// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	dangerColor    = lipgloss.Color("#8B0000") // Dark red fill for destructive buttons
	buttonColor    = lipgloss.Color("#3A3A3A")

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// ColumnTitleStyle for board column headings
	ColumnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// CardStyle for a task panel
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	// SelectedCardStyle for the task panel under the cursor
	SelectedCardStyle = CardStyle.
				BorderForeground(primaryColor)

	// ButtonStyle for inline controls
	ButtonStyle = lipgloss.NewStyle().
			Background(buttonColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// DangerButtonStyle for delete controls
	DangerButtonStyle = ButtonStyle.
				Background(dangerColor)
)
