package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/kanban/internal/tui/styles"
)

// ScrollRegion is a fixed-height vertical list that keeps one line in view
// and draws a 1-column scrollbar on the right once the content overflows.
type ScrollRegion struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including scrollbar
	height   int
}

// NewScrollRegion creates a region of the given size. The width includes the
// scrollbar column.
func NewScrollRegion(width, height int) ScrollRegion {
	vp := viewport.New(max(width-1, 0), max(height, 0))
	// Line-by-line movement belongs to the owner's cursor; the region only pages.
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}
	return ScrollRegion{viewport: vp, width: width, height: max(height, 0)}
}

// SetSize updates the region dimensions and clamps the scroll offset.
func (s *ScrollRegion) SetSize(width, height int) {
	s.width = width
	s.height = max(height, 0)
	s.viewport.Width = max(width-1, 0)
	s.viewport.Height = s.height
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// SetLines replaces the content, keeping the current offset where possible.
func (s *ScrollRegion) SetLines(lines []string) {
	s.lines = slices.Clone(lines)
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// EnsureVisible scrolls the minimum amount needed for line to be on screen.
func (s *ScrollRegion) EnsureVisible(line int) {
	if line < 0 || line >= len(s.lines) || s.height == 0 {
		return
	}
	top := s.viewport.YOffset
	bottom := top + s.height - 1
	switch {
	case line < top:
		s.viewport.SetYOffset(line)
	case line > bottom:
		s.viewport.SetYOffset(line - s.height + 1)
	}
}

// Update forwards paging keys and mouse wheel events to the viewport.
func (s *ScrollRegion) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// Height returns the number of visible lines.
func (s ScrollRegion) Height() int {
	return s.height
}

// YOffset returns the index of the first visible line.
func (s ScrollRegion) YOffset() int {
	return s.viewport.YOffset
}

// View renders the visible lines padded to the content width, followed by
// the scrollbar column.
func (s ScrollRegion) View() string {
	if s.height == 0 {
		return ""
	}

	contentWidth := max(s.width-1, 0)
	content := strings.Split(s.viewport.View(), "\n")
	bar := Scrollbar(s.height, len(s.lines), s.viewport.YOffset)

	rows := make([]string, s.height)
	for i := range rows {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		if pad := contentWidth - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows[i] = line + bar[i]
	}
	return strings.Join(rows, "\n")
}

// Scrollbar returns one cell per visible row. It is blank while the content
// fits; otherwise a track with a thumb sized to the visible fraction.
func Scrollbar(viewHeight, contentHeight, yOffset int) []string {
	if viewHeight <= 0 {
		return nil
	}

	cells := make([]string, viewHeight)
	if contentHeight <= viewHeight {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumbSize := max(viewHeight*viewHeight/contentHeight, 1)
	thumbMaxTop := viewHeight - thumbSize
	thumbTop := yOffset * thumbMaxTop / (contentHeight - viewHeight)
	thumbTop = min(max(thumbTop, 0), thumbMaxTop)

	for i := range cells {
		if i >= thumbTop && i < thumbTop+thumbSize {
			cells[i] = styles.SelectedStyle.Render("█")
		} else {
			cells[i] = styles.SubtleStyle.Render("│")
		}
	}
	return cells
}
