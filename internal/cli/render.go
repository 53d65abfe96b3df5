package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFCF0")).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3AA99F"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFCF0"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#575653"))
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#282726")).
		Width(48).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. The first column is
// left-aligned, the rest right-aligned. A row of ["---"] draws a
// separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		for _, row := range t.Rows {
			if len(row) > numCols {
				numCols = len(row)
			}
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			continue
		}
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	borderRow := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String())
	}

	cellRow := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if i == 0 {
				b.WriteString(style.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(style.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(borderRow("╭", "┬", "╮"))
	b.WriteString("\n")

	if len(t.Headers) > 0 {
		b.WriteString(cellRow(t.Headers, headerStyle))
		b.WriteString("\n")
		b.WriteString(borderRow("├", "┼", "┤"))
		b.WriteString("\n")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(borderRow("├", "┼", "┤"))
		} else {
			b.WriteString(cellRow(row, valueStyle))
		}
		b.WriteString("\n")
	}

	b.WriteString(borderRow("╰", "┴", "╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderSparkline generates a unicode block sparkline from a series.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// RenderKeyValue renders an indented "label: value" line for summaries.
func RenderKeyValue(label, value string) string {
	return fmt.Sprintf("  %s %s", dimStyle.Render(label+":"), valueStyle.Render(value))
}
