package tui

import (
	"fmt"
	"strings"

	"khata/internal/cli"
	"khata/internal/model"
	"khata/internal/tui/components"
	"khata/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	fc := a.sess.Forecast()
	series := a.sess.DailySeries()
	budgets := a.sess.Budgets()
	byCat := a.sess.SpendByCategory()
	byChan := a.sess.SpendByChannel()
	var b strings.Builder

	// Row 1: Metric cards
	pool := a.sess.Allowance() + a.sess.SideIncome()

	daysLeft := fmt.Sprintf("%d", fc.DaysLeft)
	runout := "no spend yet"
	if fc.Unbounded {
		daysLeft = "∞"
		runout = "money outlasts the month"
	} else if fc.RunoutDate != nil {
		runout = "runs out " + cli.FormatDate(*fc.RunoutDate)
	}

	spentDetail := ""
	if pool > 0 {
		spentDetail = fmt.Sprintf("%s of allowance", cli.FormatPercent(a.sess.SpendSoFar()/pool))
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Balance", cli.FormatMoney(fc.Balance), "of " + cli.FormatMoney(pool)},
		{"Daily Burn", cli.FormatMoney(fc.Burn), "smoothed, recent days weigh more"},
		{"Days Left", daysLeft, runout},
		{"Spent", cli.FormatMoney(a.sess.SpendSoFar()), spentDetail},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Month-to-date daily spend chart
	if len(series) > 0 {
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Daily Spend (%s)", a.sess.Today().Format("Jan")),
			components.BarChart(series, dayLabels(len(series)), t.Blue, chartInnerW, 8),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Budgets + Nudges
	halves := components.LayoutRow(cw, 2)

	budgetInnerW := components.CardInnerWidth(halves[0])
	labelW := 9 // longest category name
	barW := budgetInnerW - labelW - 24
	if barW < 8 {
		barW = 8
	}
	var budgetBody strings.Builder
	for _, c := range model.Categories {
		budget := budgets[c]
		spent := byCat[c]
		pct := 0.0
		if budget > 0 {
			pct = spent / budget
		}
		amounts := fmt.Sprintf("%s / %s", cli.FormatMoney(spent), cli.FormatMoney(budget))
		budgetBody.WriteString(components.BudgetBar(string(c), pct, amounts, labelW, barW))
		budgetBody.WriteString("\n")
	}

	nudgeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	bulletStyle := lipgloss.NewStyle().Foreground(t.Orange)
	nudgeInnerW := components.CardInnerWidth(halves[1])
	var nudgeBody strings.Builder
	for _, n := range a.sess.Nudges() {
		nudgeBody.WriteString(bulletStyle.Render("› "))
		nudgeBody.WriteString(nudgeStyle.Render(truncStr(n, nudgeInnerW-2)))
		nudgeBody.WriteString("\n")
	}

	budgetCard := components.ContentCard(fmt.Sprintf("Budgets (%s)", a.sess.Mode().Label()), budgetBody.String(), halves[0])
	nudgeCard := components.ContentCard("Nudges", nudgeBody.String(), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(fmt.Sprintf("Budgets (%s)", a.sess.Mode().Label()), budgetBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Nudges", nudgeBody.String(), cw))
		b.WriteString("\n")
	} else {
		b.WriteString(components.CardRow([]string{budgetCard, nudgeCard}))
		b.WriteString("\n")
	}

	// Row 4: Channel split
	chanInnerW := components.CardInnerWidth(cw)
	total := 0.0
	for _, ch := range model.Channels {
		total += byChan[ch]
	}
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	chanBarMax := chanInnerW - 24
	if chanBarMax < 8 {
		chanBarMax = 8
	}
	var chanBody strings.Builder
	for _, ch := range model.Channels {
		amt := byChan[ch]
		share := 0.0
		if total > 0 {
			share = amt / total
		}
		barLen := int(share * float64(chanBarMax))
		fmt.Fprintf(&chanBody, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-5s", string(ch))),
			barStyle.Render(strings.Repeat("█", barLen)),
			pctStyle.Render(fmt.Sprintf("%s (%.0f%%)", cli.FormatMoney(amt), share*100)))
	}
	b.WriteString(components.ContentCard("Channels", chanBody.String(), cw))

	return b.String()
}
