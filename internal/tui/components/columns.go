package components

import "github.com/charmbracelet/lipgloss"

// ColumnWidths splits total into n widths that differ by at most one cell,
// giving the remainder to the leftmost columns.
func ColumnWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	total = max(total, 0)
	widths := make([]int, n)
	base, extra := total/n, total%n
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}

// Columns lays blocks out side by side, each padded to its share of width.
func Columns(width int, blocks []string) string {
	widths := ColumnWidths(width, len(blocks))
	placed := make([]string, len(blocks))
	for i, block := range blocks {
		placed[i] = lipgloss.NewStyle().Width(widths[i]).MaxWidth(widths[i]).Render(block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, placed...)
}
