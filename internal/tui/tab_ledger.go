package tui

import (
	"fmt"
	"strings"

	"khata/internal/cli"
	"khata/internal/tui/components"
	"khata/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ledgerState tracks the ledger tab cursor and scroll window.
type ledgerState struct {
	cursor int
	offset int
}

func (a App) updateLedgerKeys(key string) (tea.Model, tea.Cmd, bool) {
	txns := a.sess.Transactions()

	switch key {
	case "a":
		m, cmd := a.openForm(formAddTxn, newAddTxnForm)
		return m, cmd, true
	case "t":
		m, cmd := a.openForm(formTopUp, newTopUpForm)
		return m, cmd, true
	case "j", "down":
		if a.ledState.cursor < len(txns)-1 {
			a.ledState.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.ledState.cursor > 0 {
			a.ledState.cursor--
		}
		return a, nil, true
	case "g":
		a.ledState.cursor = 0
		a.ledState.offset = 0
		return a, nil, true
	case "G":
		a.ledState.cursor = len(txns) - 1
		if a.ledState.cursor < 0 {
			a.ledState.cursor = 0
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderLedgerTab(cw, contentH int) string {
	t := theme.Active
	txns := a.sess.Transactions()
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	catStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	chanStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	spendStyle := lipgloss.NewStyle().Foreground(t.Orange)
	creditStyle := lipgloss.NewStyle().Foreground(t.Green)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	innerW := components.CardInnerWidth(cw)
	noteW := innerW - 38
	if noteW < 6 {
		noteW = 6
	}

	// Visible window: card borders and header eat ~6 rows
	visible := contentH - 6
	if visible < 3 {
		visible = 3
	}
	led := a.ledState
	if led.cursor < led.offset {
		led.offset = led.cursor
	}
	if led.cursor >= led.offset+visible {
		led.offset = led.cursor - visible + 1
	}

	if len(txns) == 0 {
		b.WriteString(dateStyle.Render("No transactions yet."))
		b.WriteString("\n\n")
		b.WriteString(dateStyle.Render("[a] add a spend   [t] record a top-up"))
		return components.ContentCard("Ledger", b.String(), cw)
	}

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(
		fmt.Sprintf("  %-7s %-10s %-5s %10s  %s", "Date", "Category", "Via", "Amount", "Note")))

	end := led.offset + visible
	if end > len(txns) {
		end = len(txns)
	}
	for i := led.offset; i < end; i++ {
		tx := txns[i]

		amtStyle := spendStyle
		if tx.Amount < 0 {
			amtStyle = creditStyle
		}

		row := fmt.Sprintf("%s %s %s %s  %s",
			dateStyle.Render(fmt.Sprintf("%-7s", cli.FormatDate(tx.Date))),
			catStyle.Render(fmt.Sprintf("%-10s", string(tx.Category))),
			chanStyle.Render(fmt.Sprintf("%-5s", string(tx.Channel))),
			amtStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(tx.Amount))),
			noteStyle.Render(truncStr(tx.Note, noteW)))

		if i == led.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selStyle.Render(row))
		} else {
			b.WriteString("  ")
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	if len(txns) > visible {
		b.WriteString(dateStyle.Render(fmt.Sprintf("  %d-%d of %d", led.offset+1, end, len(txns))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dateStyle.Render("[a] add spend  [t] top-up  [j/k] scroll"))

	title := fmt.Sprintf("Ledger · %s spent", cli.FormatMoney(a.sess.SpendSoFar()))
	return components.ContentCard(title, b.String(), cw)
}
