package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/pablasso/kanban/internal/tui/styles"
)

// StatusBar renders the bottom help line from a set of key bindings.
type StatusBar struct {
	help help.Model
}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = styles.StatusBarStyle.Bold(true)
	h.Styles.ShortDesc = styles.StatusBarStyle
	h.Styles.ShortSeparator = styles.StatusBarStyle
	h.Styles.FullKey = styles.StatusBarStyle.Bold(true)
	h.Styles.FullDesc = styles.StatusBarStyle
	h.Styles.FullSeparator = styles.StatusBarStyle
	return StatusBar{help: h}
}

// Render returns the help line for keys, truncated to width. With full set,
// every binding group is shown in columns instead of the short line.
func (s StatusBar) Render(width int, keys help.KeyMap, full bool) string {
	s.help.Width = width
	s.help.ShowAll = full
	return styles.StatusBarStyle.Width(width).Render(s.help.View(keys))
}

// Bindings adapts a flat list of bindings to help.KeyMap.
type Bindings []key.Binding

// ShortHelp implements help.KeyMap.
func (b Bindings) ShortHelp() []key.Binding { return b }

// FullHelp implements help.KeyMap.
func (b Bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
