package views

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/kanban/internal/tui/components"
)

// Screen rows shared by both views: title, separator, input row, separator,
// then the content.
const (
	inputRowY = 2
	contentY  = 4
)

// frameInput is what a render pass resolves against the controls it draws.
// The zero value only draws.
type frameInput struct {
	intent intent
	click  bool
	x, y   int
}

func keyInput(in intent) frameInput {
	return frameInput{intent: in}
}

func clickInput(msg tea.MouseMsg) frameInput {
	return frameInput{click: true, x: msg.X, y: msg.Y}
}

// hits reports whether the click lands on the span [x, x+width) of row y.
func (in frameInput) hits(x, y, width int) bool {
	return in.click && in.y == y && in.x >= x && in.x < x+width
}

// isClick reports whether msg completes a left click. X10 mouse reporting
// sends releases without a button.
func isClick(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionRelease {
		return false
	}
	return msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone
}

var addButton = components.Button{Label: "Add"}

// inputRow draws `label [input] [Add]`.
func inputRow(label string, input textinput.Model) string {
	return label + input.View() + " " + addButton.Render()
}

// onAddButton reports whether column x of the input row is on the Add button.
func onAddButton(label string, input textinput.Model, x int) bool {
	start := lipgloss.Width(label + input.View() + " ")
	return x >= start && x < start+lipgloss.Width(addButton.Render())
}
