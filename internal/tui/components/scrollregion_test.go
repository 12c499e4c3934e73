package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestScrollbar_ZeroHeight(t *testing.T) {
	if got := Scrollbar(0, 10, 0); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestScrollbar_ContentFits(t *testing.T) {
	cells := Scrollbar(5, 3, 0)
	if len(cells) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c != " " {
			t.Errorf("cell %d: expected blank gutter, got %q", i, c)
		}
	}
}

func TestScrollbar_ThumbFollowsOffset(t *testing.T) {
	top := Scrollbar(10, 100, 0)
	if !strings.Contains(top[0], "█") || !strings.Contains(top[9], "│") {
		t.Errorf("expected thumb at top, got %q", top)
	}

	bottom := Scrollbar(10, 100, 90)
	if !strings.Contains(bottom[9], "█") || !strings.Contains(bottom[0], "│") {
		t.Errorf("expected thumb at bottom, got %q", bottom)
	}
}

func TestScrollRegion_EnsureVisible(t *testing.T) {
	s := NewScrollRegion(20, 3)
	s.SetLines(numbered(10))

	s.EnsureVisible(5)
	if s.YOffset() != 3 {
		t.Errorf("expected offset 3 after scrolling down, got %d", s.YOffset())
	}

	s.EnsureVisible(4)
	if s.YOffset() != 3 {
		t.Errorf("expected offset to stay 3 for a visible line, got %d", s.YOffset())
	}

	s.EnsureVisible(1)
	if s.YOffset() != 1 {
		t.Errorf("expected offset 1 after scrolling up, got %d", s.YOffset())
	}

	s.EnsureVisible(42)
	if s.YOffset() != 1 {
		t.Errorf("expected out-of-range line to be ignored, got %d", s.YOffset())
	}
}

func TestScrollRegion_View(t *testing.T) {
	s := NewScrollRegion(20, 3)
	s.SetLines(numbered(10))
	s.EnsureVisible(4)

	rows := strings.Split(s.View(), "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !strings.Contains(rows[0], "line 2") || !strings.Contains(rows[2], "line 4") {
		t.Errorf("unexpected visible rows: %q", rows)
	}
}

func TestScrollRegion_ShrinkingContentClampsOffset(t *testing.T) {
	s := NewScrollRegion(20, 3)
	s.SetLines(numbered(10))
	s.EnsureVisible(9)

	s.SetLines(numbered(2))
	if s.YOffset() != 0 {
		t.Errorf("expected offset clamped to 0, got %d", s.YOffset())
	}
}

func TestScrollRegion_Update(t *testing.T) {
	tests := []struct {
		name     string
		msgs     []tea.Msg
		expected int
	}{
		{"page down", []tea.Msg{tea.KeyMsg{Type: tea.KeyPgDown}}, 3},
		{"page down clamps", []tea.Msg{tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown}}, 7},
		{"wheel down then up", []tea.Msg{
			tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress},
			tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress},
		}, 0},
		{"line keys ignored", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScrollRegion(20, 3)
			s.SetLines(numbered(10))

			for _, msg := range tc.msgs {
				s.Update(msg)
			}
			if s.YOffset() != tc.expected {
				t.Errorf("expected offset %d, got %d", tc.expected, s.YOffset())
			}
		})
	}
}
