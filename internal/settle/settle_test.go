package settle

import (
	"math"
	"testing"
	"time"

	"khata/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squad(members []string, txns ...model.GroupTransaction) model.Group {
	return model.Group{
		ID:      uuid.New(),
		Name:    "trip",
		Members: members,
		Txns:    txns,
	}
}

func expense(amount float64, paidBy string, splitWith ...string) model.GroupTransaction {
	return model.GroupTransaction{
		ID:        uuid.New(),
		Date:      time.Now(),
		Amount:    amount,
		PaidBy:    paidBy,
		SplitWith: splitWith,
	}
}

func TestNetEqualSplit(t *testing.T) {
	g := squad([]string{"Aman", "Priya", "Rahul"},
		expense(300, "Aman", "Aman", "Priya", "Rahul"),
	)

	net := Net(g)
	assert.InDelta(t, 200, net["Aman"], 1e-9)
	assert.InDelta(t, -100, net["Priya"], 1e-9)
	assert.InDelta(t, -100, net["Rahul"], 1e-9)
}

func TestNetConservation(t *testing.T) {
	g := squad([]string{"A", "B", "C", "D"},
		expense(1000, "A", "A", "B", "C"),
		expense(450, "B", "B", "D"),
		expense(333, "C", "A", "B", "C", "D"),
	)

	var sum float64
	for _, v := range Net(g) {
		sum += v
	}
	assert.InDelta(t, 0, sum, 1e-6, "net balances must conserve to zero")
}

func TestPlanScenarioB(t *testing.T) {
	g := squad([]string{"A", "B", "C"},
		expense(300, "A", "A", "B", "C"),
	)

	plan := Plan(g)
	require.Len(t, plan, 2)
	assert.Equal(t, model.Transfer{From: "B", To: "A", Amount: 100}, plan[0])
	assert.Equal(t, model.Transfer{From: "C", To: "A", Amount: 100}, plan[1])
}

func TestPlanZeroesBalancesWithinRounding(t *testing.T) {
	g := squad([]string{"A", "B", "C", "D"},
		expense(1000, "A", "A", "B", "C", "D"),
		expense(700, "B", "B", "C"),
		expense(250, "C", "A", "D"),
	)

	net := Net(g)
	plan := Plan(g)

	// Apply the suggested transfers and check everyone lands near zero.
	for _, tr := range plan {
		net[tr.From] += tr.Amount
		net[tr.To] -= tr.Amount
	}
	for m, v := range net {
		assert.LessOrEqualf(t, math.Abs(v), 1.0+tolerance,
			"member %s left with %.2f after settling", m, v)
	}

	assert.LessOrEqual(t, len(plan), len(g.Members)-1)
}

func TestPlanSettledGroupIsEmpty(t *testing.T) {
	g := squad([]string{"A", "B"},
		expense(100, "A", "A", "B"),
		expense(100, "B", "A", "B"),
	)
	assert.Empty(t, Plan(g))
}

func TestPlanIgnoresMembersWithinTolerance(t *testing.T) {
	// C's share drift stays inside the +-0.5 band and is absorbed.
	g := squad([]string{"A", "B", "C"},
		expense(100, "A", "A", "B"),
	)

	plan := Plan(g)
	require.Len(t, plan, 1)
	assert.Equal(t, "B", plan[0].From)
	assert.Equal(t, "A", plan[0].To)
	assert.Equal(t, float64(50), plan[0].Amount)
}

func TestPlanIdempotent(t *testing.T) {
	g := squad([]string{"A", "B", "C"},
		expense(301, "A", "A", "B", "C"),
		expense(150, "B", "B", "C"),
	)

	first := Plan(g)
	second := Plan(g)
	assert.Equal(t, first, second, "same group state must yield the same plan")
}

func TestPlanStableOrderForEqualDebts(t *testing.T) {
	// B and C owe identical amounts; member order breaks the tie.
	g := squad([]string{"A", "B", "C"},
		expense(300, "A", "A", "B", "C"),
	)

	plan := Plan(g)
	require.Len(t, plan, 2)
	assert.Equal(t, "B", plan[0].From)
	assert.Equal(t, "C", plan[1].From)
}

func TestPlanRoundsToWholeRupees(t *testing.T) {
	g := squad([]string{"A", "B", "C"},
		expense(100, "A", "A", "B", "C"),
	)

	for _, tr := range Plan(g) {
		assert.Equal(t, math.Round(tr.Amount), tr.Amount, "transfer %v not whole", tr)
	}
}
