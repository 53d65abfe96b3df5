package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"khata/internal/cli"
	"khata/internal/model"
	"khata/internal/settle"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagMembers  []string
	flagExpenses []string
)

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Work out who pays whom for a set of shared expenses",
	Long: "A standalone settle-up calculator. Feed it the squad roster and the\n" +
		"expenses, get the minimal whole-rupee transfer plan.",
	Example: `  khata settle \
    --member Me --member Aman --member Priya \
    --expense "Me:900:Me,Aman,Priya" \
    --expense "Aman:300:Aman,Priya"`,
	RunE: runSettle,
}

func init() {
	settleCmd.Flags().StringArrayVar(&flagMembers, "member", nil, "Squad member (repeat per person)")
	settleCmd.Flags().StringArrayVar(&flagExpenses, "expense", nil, `Expense as "payer:amount:name,name,..." (repeat per expense)`)
	rootCmd.AddCommand(settleCmd)
}

func runSettle(_ *cobra.Command, _ []string) error {
	if len(flagMembers) < 2 {
		return fmt.Errorf("need at least two --member flags")
	}
	if len(flagExpenses) == 0 {
		return fmt.Errorf("need at least one --expense flag")
	}

	g := model.Group{ID: uuid.New(), Name: "settle", Members: flagMembers}

	for _, raw := range flagExpenses {
		tx, err := parseExpense(raw, g)
		if err != nil {
			return err
		}
		g.Txns = append(g.Txns, tx)
	}

	nets := settle.Net(g)
	plan := settle.Plan(g)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SETTLE UP"))
	fmt.Println()

	rows := make([][]string, 0, len(g.Members))
	for _, m := range g.Members {
		net := nets[m]
		status := "settled"
		switch {
		case net > 0.5:
			status = "is owed"
		case net < -0.5:
			status = "owes"
		}
		rows = append(rows, []string{m, status, cli.FormatMoney(math.Abs(net))})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Balances",
		Headers: []string{"Member", "", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()

	if len(plan) == 0 {
		fmt.Println("  All square. Nothing to settle.")
		return nil
	}

	planRows := make([][]string, 0, len(plan))
	for _, tr := range plan {
		planRows = append(planRows, []string{tr.From, tr.To, cli.FormatMoney(tr.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Transfers",
		Headers: []string{"From", "To", "Amount"},
		Rows:    planRows,
	}))

	return nil
}

// parseExpense decodes "payer:amount:name,name,...". The split list
// must be drawn from the roster; the payer need not be in it.
func parseExpense(raw string, g model.Group) (model.GroupTransaction, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return model.GroupTransaction{}, fmt.Errorf("bad --expense %q: want payer:amount:name,name,...", raw)
	}

	payer := strings.TrimSpace(parts[0])
	if !g.HasMember(payer) {
		return model.GroupTransaction{}, fmt.Errorf("payer %q is not a --member", payer)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || amount <= 0 {
		return model.GroupTransaction{}, fmt.Errorf("bad amount in --expense %q", raw)
	}

	var splitWith []string
	for _, name := range strings.Split(parts[2], ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !g.HasMember(name) {
			return model.GroupTransaction{}, fmt.Errorf("split member %q is not a --member", name)
		}
		splitWith = append(splitWith, name)
	}
	if len(splitWith) == 0 {
		return model.GroupTransaction{}, fmt.Errorf("no split members in --expense %q", raw)
	}

	return model.GroupTransaction{
		ID:        uuid.New(),
		Amount:    amount,
		PaidBy:    payer,
		SplitWith: splitWith,
	}, nil
}
