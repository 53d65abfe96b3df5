package tui

import (
	"fmt"
	"math"
	"strings"

	"khata/internal/cli"
	"khata/internal/model"
	"khata/internal/tui/components"
	"khata/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// squadsState tracks the squads tab cursor.
type squadsState struct {
	cursor int
}

func (a App) updateSquadsKeys(key string) (tea.Model, tea.Cmd, bool) {
	groups, err := a.sess.Groups()
	if err != nil {
		groups = nil
	}

	switch key {
	case "n":
		m, cmd := a.openForm(formNewSquad, newSquadForm)
		return m, cmd, true
	case "a":
		if a.squadState.cursor < len(groups) {
			g := groups[a.squadState.cursor]
			m, cmd := a.openForm(formSquadExpense, func(v *formValues) *huh.Form {
				return newExpenseForm(g, v)
			})
			return m, cmd, true
		}
		return a, nil, true
	case "j", "down":
		if a.squadState.cursor < len(groups)-1 {
			a.squadState.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.squadState.cursor > 0 {
			a.squadState.cursor--
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderSquadsTab(cw int) string {
	t := theme.Active

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	groups, err := a.sess.Groups()
	if err != nil {
		return components.ContentCard("Squads", dimStyle.Render("Could not load squads: "+err.Error()), cw)
	}

	if len(groups) == 0 {
		var b strings.Builder
		b.WriteString(dimStyle.Render("No squads yet. Press [n] to start one"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("for the next trip or group order."))
		return components.ContentCard("Squads", b.String(), cw)
	}

	if a.squadState.cursor >= len(groups) {
		a.squadState.cursor = len(groups) - 1
	}
	g := groups[a.squadState.cursor]

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	// Squad list
	var listBody strings.Builder
	for i, grp := range groups {
		if i == a.squadState.cursor {
			listBody.WriteString(markerStyle.Render("▸ "))
			listBody.WriteString(selStyle.Render(grp.Name))
		} else {
			listBody.WriteString("  ")
			listBody.WriteString(nameStyle.Render(grp.Name))
		}
		listBody.WriteString(dimStyle.Render(fmt.Sprintf("  %d members, %d expenses",
			len(grp.Members), len(grp.Txns))))
		listBody.WriteString("\n")
	}
	listBody.WriteString("\n")
	listBody.WriteString(dimStyle.Render("[n] new squad  [a] add expense  [j/k] select"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Squads", listBody.String(), cw))
	b.WriteString("\n")

	// Detail: expenses + balances + settle-up plan
	halves := components.LayoutRow(cw, 2)

	var expBody strings.Builder
	if len(g.Txns) == 0 {
		expBody.WriteString(dimStyle.Render("No shared expenses yet."))
	}
	noteW := components.CardInnerWidth(halves[0]) - 22
	if noteW < 6 {
		noteW = 6
	}
	for _, tx := range g.Txns {
		fmt.Fprintf(&expBody, "%s %s %s\n",
			dimStyle.Render(fmt.Sprintf("%-7s", cli.FormatDate(tx.Date))),
			nameStyle.Render(fmt.Sprintf("%9s", cli.FormatMoney(tx.Amount))),
			dimStyle.Render(truncStr(fmt.Sprintf("%s, by %s", tx.Description, tx.PaidBy), noteW)))
	}

	var settleBody strings.Builder
	nets, err := a.sess.Nets(g.ID)
	if err == nil {
		settleBody.WriteString(renderNets(g, nets))
	}
	transfers, err := a.sess.Settlements(g.ID)
	if err == nil {
		settleBody.WriteString("\n")
		settleBody.WriteString(renderTransfers(transfers))
	}

	expCard := components.ContentCard("Expenses · "+g.Name, expBody.String(), halves[0])
	settleCard := components.ContentCard("Settle Up", settleBody.String(), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Expenses · "+g.Name, expBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Settle Up", settleBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{expCard, settleCard}))
	}

	return b.String()
}

// renderNets lists per-member balances in roster order.
func renderNets(g model.Group, nets map[string]float64) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	owedStyle := lipgloss.NewStyle().Foreground(t.Green)
	owesStyle := lipgloss.NewStyle().Foreground(t.Red)
	evenStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, m := range g.Members {
		net := nets[m]
		var status string
		switch {
		case net > 0.5:
			status = owedStyle.Render(fmt.Sprintf("gets %s", cli.FormatMoney(net)))
		case net < -0.5:
			status = owesStyle.Render(fmt.Sprintf("owes %s", cli.FormatMoney(math.Abs(net))))
		default:
			status = evenStyle.Render("settled")
		}
		fmt.Fprintf(&b, "%s %s\n", nameStyle.Render(fmt.Sprintf("%-12s", truncStr(m, 12))), status)
	}
	return b.String()
}

// renderTransfers lists the minimal whole-rupee transfer plan.
func renderTransfers(transfers []model.Transfer) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	arrowStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amtStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(transfers) == 0 {
		return dimStyle.Render("All square. Nothing to settle.")
	}

	var b strings.Builder
	for _, tr := range transfers {
		fmt.Fprintf(&b, "%s %s %s  %s\n",
			nameStyle.Render(tr.From),
			arrowStyle.Render("pays"),
			nameStyle.Render(tr.To),
			amtStyle.Render(cli.FormatMoney(tr.Amount)))
	}
	return b.String()
}
