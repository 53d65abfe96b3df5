// Package model defines domain types for khata ledger state.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a transaction. The set is closed: budgets, charts,
// and the nudge rules all assume exactly these seven values.
type Category string

const (
	CategoryMess      Category = "Mess"
	CategoryOutings   Category = "Outings"
	CategoryGroceries Category = "Groceries"
	CategoryTravel    Category = "Travel"
	CategoryAcademics Category = "Academics"
	CategoryShopping  Category = "Shopping"
	CategoryMisc      Category = "Misc"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryMess,
	CategoryOutings,
	CategoryGroceries,
	CategoryTravel,
	CategoryAcademics,
	CategoryShopping,
	CategoryMisc,
}

// Valid reports whether c is one of the seven known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Discretionary reports whether spending in this category triggers the
// chai-jar micro-savings deposit.
func (c Category) Discretionary() bool {
	return c == CategoryOutings || c == CategoryMisc || c == CategoryTravel
}

// Channel is the payment rail a transaction went through.
type Channel string

const (
	ChannelUPI  Channel = "UPI"
	ChannelCash Channel = "Cash"
	ChannelCard Channel = "Card"
)

// Channels lists all channels in display order.
var Channels = []Channel{ChannelUPI, ChannelCash, ChannelCard}

// Valid reports whether ch is a known channel.
func (ch Channel) Valid() bool {
	return ch == ChannelUPI || ch == ChannelCash || ch == ChannelCard
}

// Transaction is one ledger entry. Positive amounts are spends; negative
// amounts are inflows (top-ups, refunds). Immutable once recorded.
type Transaction struct {
	ID       uuid.UUID
	Date     time.Time
	Amount   float64
	Category Category
	Channel  Channel
	Note     string
}

// Spend reports whether the entry counts toward spend totals.
func (t Transaction) Spend() bool {
	return t.Amount > 0
}
