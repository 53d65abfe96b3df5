package components

import (
	"fmt"
	"strings"

	"khata/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a plain progress bar with percentage, used for jar fill.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barColor lipgloss.Color
	switch {
	case pct >= 1:
		barColor = t.Green
	case pct >= 0.5:
		barColor = t.Accent
	default:
		barColor = t.Blue
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForPct returns green/yellow/orange/red based on utilization level.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled utilization bar with spent/budget amounts.
// Color shifts toward red as spending approaches the budget cap.
func BudgetBar(label string, pct float64, amounts string, labelW, barWidth int) string {
	t := theme.Active

	shown := pct
	if shown < 0 {
		shown = 0
	}
	if shown > 1 {
		shown = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Background(t.Surface).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(shown) +
		spaceStyle.Render(" ") +
		pctStyle.Render(pctStr) +
		spaceStyle.Render("  ") +
		amountStyle.Render(amounts)
}
