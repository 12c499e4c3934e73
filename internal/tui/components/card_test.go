package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCard_Render_ContainsLabelAndButtons(t *testing.T) {
	c := Card{
		Label:   "#3 write docs",
		Buttons: []Button{{Label: "←"}, {Label: "→"}, {Label: "✕", Danger: true}},
	}
	result := c.Render(30)

	for _, want := range []string{"#3 write docs", "←", "→", "✕"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected card to contain %q, got:\n%s", want, result)
		}
	}
}

func TestCard_Render_FixedHeight(t *testing.T) {
	c := Card{Label: strings.Repeat("very long task text ", 10), Buttons: []Button{{Label: "→"}}}
	result := c.Render(24)

	if got := lipgloss.Height(result); got != CardHeight {
		t.Errorf("expected height %d, got %d:\n%s", CardHeight, got, result)
	}
	if got := lipgloss.Width(result); got != 24 {
		t.Errorf("expected width 24, got %d", got)
	}
	if !strings.Contains(result, "…") {
		t.Errorf("expected long label to be truncated, got:\n%s", result)
	}
}

func TestCard_Render_SelectedKeepsSize(t *testing.T) {
	c := Card{Label: "a", Buttons: []Button{{Label: "✕", Danger: true}}}
	plain := c.Render(20)
	c.Selected = true
	selected := c.Render(20)

	if lipgloss.Width(plain) != lipgloss.Width(selected) || lipgloss.Height(plain) != lipgloss.Height(selected) {
		t.Error("expected selection not to change card size")
	}
}

func TestCard_ButtonAt(t *testing.T) {
	c := Card{
		Label:   "#0 A",
		Buttons: []Button{{Label: "→"}, {Label: "✕", Danger: true}},
	}

	// border, padding, then " → " and " ✕ " separated by a space
	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"first button", 3, 2, 0},
		{"first button edge", 2, 2, 0},
		{"gap", 5, 2, -1},
		{"second button", 7, 2, 1},
		{"past buttons", 10, 2, -1},
		{"label row", 3, 1, -1},
		{"border", 3, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.ButtonAt(24, tc.x, tc.y); got != tc.expected {
				t.Errorf("ButtonAt(24, %d, %d) = %d, want %d", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCard_ButtonAt_SkipsTruncatedButtons(t *testing.T) {
	c := Card{Buttons: []Button{{Label: "←"}, {Label: "→"}, {Label: "✕"}}}

	// 6 inner cells hold only the first button
	if got := c.ButtonAt(10, 7, 2); got != -1 {
		t.Errorf("expected truncated button to be unclickable, got %d", got)
	}
	if got := c.ButtonAt(10, 3, 2); got != 0 {
		t.Errorf("expected first button, got %d", got)
	}
}
