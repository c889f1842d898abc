package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(colorBorder)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
)

type table struct {
	title   string
	headers []string
	rows    [][]string
}

// renderTable renders a bordered table. The first column is left aligned,
// all others are right aligned.
func renderTable(t table) string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder
	if t.title != "" {
		b.WriteString("  " + headerStyle.Render(t.title) + "\n")
	}

	border := func(left, middle, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < len(widths)-1 {
				b.WriteString(dimStyle.Render(middle))
			}
		}
		b.WriteString(dimStyle.Render(right) + "\n")
	}

	line := func(cells []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}

			// Styled cells contain escape sequences, pad by their visible width
			padding := strings.Repeat(" ", w-lipgloss.Width(cell))
			if i == 0 {
				b.WriteString(style.Render(fmt.Sprintf(" %s%s ", cell, padding)))
			} else {
				b.WriteString(style.Render(fmt.Sprintf(" %s%s ", padding, cell)))
			}
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	border("╭", "┬", "╮")
	line(t.headers, headerStyle)
	border("├", "┼", "┤")
	for _, row := range t.rows {
		line(row, valueStyle)
	}
	border("╰", "┴", "╯")

	return b.String()
}
