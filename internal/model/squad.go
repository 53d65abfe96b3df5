package model

import (
	"time"

	"github.com/google/uuid"
)

// Group is a set of people sharing expenses (a "squad"). Member order is
// preserved for display and for deterministic settlement tie-breaks.
type Group struct {
	ID      uuid.UUID
	Name    string
	Members []string
	Txns    []GroupTransaction
}

// HasMember reports whether name is in the group.
func (g Group) HasMember(name string) bool {
	for _, m := range g.Members {
		if m == name {
			return true
		}
	}
	return false
}

// GroupTransaction is one shared expense, split equally across SplitWith.
// SplitWith is a non-empty subset of the group's members and may include
// the payer; callers enforce that before constructing one.
type GroupTransaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      float64
	PaidBy      string
	SplitWith   []string
}

// Transfer is one suggested settlement payment.
type Transfer struct {
	From   string
	To     string
	Amount float64
}
