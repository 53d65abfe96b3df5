package model

// Mode is the global budget-tightness setting. It scales every category
// budget for display and comparison; recorded transactions are never
// touched.
type Mode string

const (
	ModeTight  Mode = "tight"
	ModeNormal Mode = "normal"
	ModeChill  Mode = "chill"
)

// Modes lists all modes in cycle order.
var Modes = []Mode{ModeTight, ModeNormal, ModeChill}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// Multiplier returns the budget scale factor for the mode. Unknown
// values behave like normal.
func (m Mode) Multiplier() float64 {
	switch m {
	case ModeTight:
		return 0.75
	case ModeChill:
		return 1.15
	default:
		return 1.0
	}
}

// Label returns the display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeTight:
		return "Tight"
	case ModeChill:
		return "Chill"
	default:
		return "Normal"
	}
}

// Next returns the mode after m in cycle order.
func (m Mode) Next() Mode {
	for i, known := range Modes {
		if m == known {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeNormal
}
