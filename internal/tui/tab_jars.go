package tui

import (
	"fmt"
	"strings"

	"khata/internal/cli"
	"khata/internal/session"
	"khata/internal/tui/components"
	"khata/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// jarAdjustStep is the amount moved per +/- keypress.
const jarAdjustStep = 50

// jarsState tracks the jars tab cursor.
type jarsState struct {
	cursor int
}

func (a App) updateJarsKeys(key string) (tea.Model, tea.Cmd, bool) {
	jars := a.sess.Jars()

	switch key {
	case "n":
		m, cmd := a.openForm(formNewJar, newJarForm)
		return m, cmd, true
	case "j", "down":
		if a.jarState.cursor < len(jars)-1 {
			a.jarState.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.jarState.cursor > 0 {
			a.jarState.cursor--
		}
		return a, nil, true
	case "+", "=":
		if a.jarState.cursor < len(jars) {
			j := jars[a.jarState.cursor]
			a.sess.AdjustJar(j.Key, jarAdjustStep)
			a.status = fmt.Sprintf("+%s into %s", cli.FormatMoney(jarAdjustStep), j.Name)
		}
		return a, nil, true
	case "-", "_":
		if a.jarState.cursor < len(jars) {
			j := jars[a.jarState.cursor]
			a.sess.AdjustJar(j.Key, -jarAdjustStep)
			a.status = fmt.Sprintf("-%s from %s", cli.FormatMoney(jarAdjustStep), j.Name)
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderJarsTab(cw int) string {
	t := theme.Active
	jars := a.sess.Jars()
	var b strings.Builder

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selNameStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	if len(jars) == 0 {
		b.WriteString(dimStyle.Render("No jars yet. Press [n] to start one."))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf(
			"Tip: every Outings, Travel, or Misc spend drips %s into the chai jar.",
			cli.FormatMoney(session.MicroSaveAmount))))
		return components.ContentCard("Jars", b.String(), cw)
	}

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 10
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	for i, j := range jars {
		name := nameStyle.Render(j.Name)
		marker := "  "
		if i == a.jarState.cursor {
			name = selNameStyle.Render(j.Name)
			marker = markerStyle.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(name)
		b.WriteString(amountStyle.Render(fmt.Sprintf("  %s / %s",
			cli.FormatMoney(j.Saved), cli.FormatMoney(j.Target))))
		b.WriteString("\n  ")
		b.WriteString(components.ProgressBar(j.Pct(), barW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"[n] new jar  [+/-] move %s  [j/k] select", cli.FormatMoney(jarAdjustStep))))

	var total float64
	for _, j := range jars {
		total += j.Saved
	}
	title := fmt.Sprintf("Jars · %s saved", cli.FormatMoney(total))
	return components.ContentCard(title, b.String(), cw)
}
