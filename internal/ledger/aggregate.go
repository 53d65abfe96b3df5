// Package ledger computes derived aggregates over the transaction log.
// Every function here is pure: the session recomputes from the full
// transaction set after each mutation, nothing is cached.
package ledger

import (
	"time"

	"khata/internal/model"
)

// SpendSoFar sums all positive amounts. Inflows (negative entries)
// reduce the net balance elsewhere but never count as spend.
func SpendSoFar(txns []model.Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.Spend() {
			total += t.Amount
		}
	}
	return total
}

// SpendByCategory sums positive amounts per category. Every category is
// present in the result, zero-initialized, even with no spend at all.
func SpendByCategory(txns []model.Transaction) map[model.Category]float64 {
	byCat := make(map[model.Category]float64, len(model.Categories))
	for _, c := range model.Categories {
		byCat[c] = 0
	}
	for _, t := range txns {
		if t.Spend() {
			byCat[t.Category] += t.Amount
		}
	}
	return byCat
}

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DailySeries buckets positive spend by calendar day from monthStart
// through today inclusive. Entries dated outside that window are
// silently dropped; the series never grows past today's slot.
func DailySeries(txns []model.Transaction, monthStart, today time.Time) []float64 {
	days := daysBetween(monthStart, today) + 1
	if days < 1 {
		return nil
	}

	series := make([]float64, days)
	for _, t := range txns {
		if !t.Spend() {
			continue
		}
		idx := daysBetween(monthStart, t.Date)
		if idx < 0 || idx >= len(series) {
			continue
		}
		series[idx] += t.Amount
	}
	return series
}

// daysBetween returns whole calendar days from a to b, ignoring the
// time of day on either side.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// SpendByChannel sums positive amounts per payment channel.
func SpendByChannel(txns []model.Transaction) map[model.Channel]float64 {
	byCh := make(map[model.Channel]float64, len(model.Channels))
	for _, ch := range model.Channels {
		byCh[ch] = 0
	}
	for _, t := range txns {
		if t.Spend() {
			byCh[t.Channel] += t.Amount
		}
	}
	return byCh
}

// FilterByCategory returns transactions in the given category.
func FilterByCategory(txns []model.Transaction, c model.Category) []model.Transaction {
	var result []model.Transaction
	for _, t := range txns {
		if t.Category == c {
			result = append(result, t)
		}
	}
	return result
}

// FilterByMonth returns transactions dated within the month containing ref.
func FilterByMonth(txns []model.Transaction, ref time.Time) []model.Transaction {
	start := MonthStart(ref)
	end := start.AddDate(0, 1, 0)

	var result []model.Transaction
	for _, t := range txns {
		if !t.Date.Before(start) && t.Date.Before(end) {
			result = append(result, t)
		}
	}
	return result
}
