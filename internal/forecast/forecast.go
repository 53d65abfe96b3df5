// Package forecast predicts when the month's money runs out from the
// smoothed daily burn rate.
package forecast

import (
	"math"
	"time"
)

// Alpha is the EWMA smoothing factor for the daily burn rate. Recent
// days dominate but a single expensive day does not swing the whole
// projection.
const Alpha = 0.4

// Forecast is the run-out projection for the current state of the
// ledger. When Unbounded is true there is no burn and RunoutDate is nil.
type Forecast struct {
	Balance    float64
	Burn       float64
	DaysLeft   int
	Unbounded  bool
	RunoutDate *time.Time
}

// Burn computes the exponentially weighted moving average of the daily
// spend series. The first element seeds the state; negative entries are
// skipped. An empty series burns nothing.
func Burn(series []float64) float64 {
	state := 0.0
	seeded := false
	for _, v := range series {
		if v < 0 {
			continue
		}
		if !seeded {
			state = v
			seeded = true
			continue
		}
		state = Alpha*v + (1-Alpha)*state
	}
	return state
}

// Project computes the balance and run-out projection. Pure function of
// its inputs; today is passed in so callers control the clock.
func Project(allowance, sideIncome, spendSoFar float64, series []float64, today time.Time) Forecast {
	f := Forecast{
		Balance: allowance + sideIncome - spendSoFar,
		Burn:    Burn(series),
	}

	if f.Burn <= 0 {
		f.Unbounded = true
		return f
	}

	f.DaysLeft = int(math.Floor(math.Max(0, f.Balance) / f.Burn))
	runout := today.AddDate(0, 0, f.DaysLeft)
	f.RunoutDate = &runout
	return f
}
