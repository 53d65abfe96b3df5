// Package settle turns a squad's shared expenses into a short list of
// pairwise transfers that zero out everyone's balance.
//
// The matcher is greedy largest-debtor-to-largest-creditor. That keeps
// the transfer count at most debtors+creditors-1 but is not guaranteed
// to be the theoretical minimum in every multi-party imbalance; the
// simpler plan is the accepted behavior.
package settle

import (
	"math"
	"sort"

	"khata/internal/model"
)

// tolerance absorbs float drift from equal-split division. Members
// within this band of zero are already settled.
const tolerance = 0.5

// Net computes each member's net balance: positive means the squad owes
// them, negative means they owe the squad. The payer is credited the
// full amount; everyone in the split (payer included) is debited an
// equal share.
func Net(g model.Group) map[string]float64 {
	net := make(map[string]float64, len(g.Members))
	for _, m := range g.Members {
		net[m] = 0
	}

	for _, t := range g.Txns {
		share := t.Amount / float64(len(t.SplitWith))
		for _, m := range t.SplitWith {
			net[m] -= share
		}
		net[t.PaidBy] += t.Amount
	}
	return net
}

type party struct {
	name string
	owed float64
}

// Plan produces the ordered transfer list for the group's current
// transactions. Pure function: callers recompute it after every
// mutation instead of caching.
func Plan(g model.Group) []model.Transfer {
	net := Net(g)

	// Partition in member order so equal amounts keep a stable order.
	var debtors, creditors []party
	for _, m := range g.Members {
		switch {
		case net[m] < -tolerance:
			debtors = append(debtors, party{m, -net[m]})
		case net[m] > tolerance:
			creditors = append(creditors, party{m, net[m]})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].owed > debtors[j].owed })
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].owed > creditors[j].owed })

	var transfers []model.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amt := math.Min(debtors[i].owed, creditors[j].owed)
		transfers = append(transfers, model.Transfer{
			From:   debtors[i].name,
			To:     creditors[j].name,
			Amount: math.Round(amt),
		})

		debtors[i].owed -= amt
		creditors[j].owed -= amt
		if debtors[i].owed < 1 {
			i++
		}
		if creditors[j].owed < 1 {
			j++
		}
	}

	return transfers
}
