package tui

import (
	"fmt"
	"strings"
	"time"

	"khata/internal/cli"
	"khata/internal/model"
	"khata/internal/tui/components"
	"khata/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// eventsState tracks the events tab cursor.
type eventsState struct {
	cursor int
}

func (a App) updateEventsKeys(key string) (tea.Model, tea.Cmd, bool) {
	events := a.sess.Events()

	switch key {
	case "n":
		m, cmd := a.openForm(formNewEvent, newEventForm)
		return m, cmd, true
	case "r":
		if a.eventState.cursor < len(events) {
			ev := events[a.eventState.cursor]
			m, cmd := a.openForm(formReserve, func(v *formValues) *huh.Form {
				return newReserveForm(ev.Name, v)
			})
			return m, cmd, true
		}
		return a, nil, true
	case "j", "down":
		if a.eventState.cursor < len(events)-1 {
			a.eventState.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.eventState.cursor > 0 {
			a.eventState.cursor--
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderEventsTab(cw int) string {
	t := theme.Active
	events := a.sess.Events()
	today := a.sess.Today()
	var b strings.Builder

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selNameStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	whenStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	fullStyle := lipgloss.NewStyle().Foreground(t.Green)
	shortStyle := lipgloss.NewStyle().Foreground(t.Orange)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	if len(events) == 0 {
		b.WriteString(dimStyle.Render("Nothing coming up. Press [n] to add a fest,"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("trip, or birthday and start reserving for it."))
		return components.ContentCard("Events", b.String(), cw)
	}

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 10
	if barW > 30 {
		barW = 30
	}
	if barW < 10 {
		barW = 10
	}

	for i, ev := range events {
		name := nameStyle.Render(ev.Name)
		marker := "  "
		if i == a.eventState.cursor {
			name = selNameStyle.Render(ev.Name)
			marker = markerStyle.Render("▸ ")
		}

		b.WriteString(marker)
		b.WriteString(name)
		b.WriteString(whenStyle.Render("  " + cli.FormatDate(ev.Date)))
		days := daysUntil(today, ev.Date)
		switch {
		case days == 0:
			b.WriteString(whenStyle.Render(" (today)"))
		case days > 0:
			b.WriteString(whenStyle.Render(fmt.Sprintf(" (in %d days)", days)))
		default:
			b.WriteString(dimStyle.Render(" (past)"))
		}
		b.WriteString("\n  ")

		pct := 0.0
		if ev.ExpectedSpend > 0 {
			pct = ev.Reserved / ev.ExpectedSpend
			if pct > 1 {
				pct = 1
			}
		}
		b.WriteString(components.ProgressBar(pct, barW))
		b.WriteString("\n  ")

		gap := ev.ExpectedSpend - ev.Reserved
		if gap <= 0 {
			b.WriteString(fullStyle.Render(fmt.Sprintf("%s reserved of %s, covered",
				cli.FormatMoney(ev.Reserved), cli.FormatMoney(ev.ExpectedSpend))))
		} else {
			b.WriteString(shortStyle.Render(fmt.Sprintf("%s reserved of %s, %s short",
				cli.FormatMoney(ev.Reserved), cli.FormatMoney(ev.ExpectedSpend), cli.FormatMoney(gap))))
		}
		b.WriteString("\n")
	}

	// Fest jar mirror status
	for _, j := range a.sess.Jars() {
		if j.Key == model.JarFest {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(fmt.Sprintf("Fest jar holds %s; reservations land there too.",
				cli.FormatMoney(j.Saved))))
			b.WriteString("\n")
			break
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[n] new event  [r] reserve  [j/k] select"))

	return components.ContentCard("Events", b.String(), cw)
}

// daysUntil counts whole days from today to the event date.
func daysUntil(today, date time.Time) int {
	t0 := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	t1 := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return int(t1.Sub(t0).Hours() / 24)
}
