package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar event with money set aside for it. Reserved only
// ever grows and is mirrored into the fest jar; over-reserving past
// ExpectedSpend is allowed.
type Event struct {
	ID            uuid.UUID
	Name          string
	Date          time.Time
	ExpectedSpend float64
	Reserved      float64
}
