package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/kanban/internal/tui/styles"
)

// CardHeight is the number of rows a rendered Card occupies.
const CardHeight = 4

// Button is an inline control drawn inside a card.
type Button struct {
	Label  string
	Danger bool
}

// Render draws the button with its fill color.
func (b Button) Render() string {
	if b.Danger {
		return styles.DangerButtonStyle.Render(b.Label)
	}
	return styles.ButtonStyle.Render(b.Label)
}

// Card is a bordered group holding a one-line label and a row of buttons.
type Card struct {
	Label    string
	Buttons  []Button
	Selected bool
}

// Render draws the card at the given outer width. Labels that do not fit are
// truncated so every card is exactly CardHeight rows tall.
func (c Card) Render(width int) string {
	style := c.style()
	inner := max(width-style.GetHorizontalFrameSize(), 1)
	label := ansi.Truncate(c.Label, inner, "…")

	buttons := make([]string, len(c.Buttons))
	for i, b := range c.Buttons {
		buttons[i] = b.Render()
	}
	controls := ansi.Truncate(strings.Join(buttons, " "), inner, "")

	body := lipgloss.JoinVertical(lipgloss.Left, label, controls)
	return style.Width(width - style.GetHorizontalBorderSize()).Render(body)
}

// ButtonAt returns the index of the button drawn at (x, y), measured from the
// top-left corner of the card rendered at width, or -1 if there is none.
func (c Card) ButtonAt(width, x, y int) int {
	style := c.style()
	if y != style.GetBorderTopSize()+style.GetPaddingTop()+1 {
		return -1
	}

	left := style.GetBorderLeftSize() + style.GetPaddingLeft()
	right := left + max(width-style.GetHorizontalFrameSize(), 1)
	pos := left
	for i, b := range c.Buttons {
		w := lipgloss.Width(b.Render())
		if pos+w > right {
			break
		}
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

func (c Card) style() lipgloss.Style {
	if c.Selected {
		return styles.SelectedCardStyle
	}
	return styles.CardStyle
}
