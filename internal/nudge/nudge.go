// Package nudge classifies the current money situation into short
// advisory messages. The rules are a fixed ordered table; every rule
// that matches fires, and the order never changes.
package nudge

import (
	"fmt"

	"khata/internal/model"
)

// Thresholds for the built-in rules.
const (
	runwayWarnDays = 7
	emergencyFloor = 1000
)

// Input is everything the rules look at. Budgets are the mode-adjusted
// values the session exposes, not the raw config numbers.
type Input struct {
	SpendByCategory map[model.Category]float64
	Budgets         map[model.Category]float64
	DaysLeft        int
	Unbounded       bool
	Jars            []model.Jar
}

type rule struct {
	match   func(Input) bool
	message func(Input) string
}

var rules = []rule{
	{
		match: func(in Input) bool {
			budget, ok := in.Budgets[model.CategoryOutings]
			return ok && in.SpendByCategory[model.CategoryOutings] > budget
		},
		message: func(in Input) string {
			return fmt.Sprintf("Outings is over budget: spent ₹%.0f against ₹%.0f. Ease off this week.",
				in.SpendByCategory[model.CategoryOutings], in.Budgets[model.CategoryOutings])
		},
	},
	{
		match: func(in Input) bool {
			return !in.Unbounded && in.DaysLeft < runwayWarnDays
		},
		message: func(in Input) string {
			return fmt.Sprintf("At this rate the money runs out in %d days. Slow down.", in.DaysLeft)
		},
	},
	{
		match: func(in Input) bool {
			for _, j := range in.Jars {
				if j.Key == model.JarEmergency {
					return j.Saved < emergencyFloor
				}
			}
			return false
		},
		message: func(Input) string {
			return fmt.Sprintf("Emergency jar is under ₹%d. Top it up when you can.", emergencyFloor)
		},
	},
}

// Evaluate runs the rule table in order, returning every message that
// fires. Never returns an empty list: a quiet month gets the default.
func Evaluate(in Input) []string {
	var out []string
	for _, r := range rules {
		if r.match(in) {
			out = append(out, r.message(in))
		}
	}
	if len(out) == 0 {
		out = append(out, "All good. Spending is on track this month.")
	}
	return out
}
