package model

// Well-known jar keys wired to automatic behaviors.
const (
	JarChai      = "chai"      // micro-savings target for discretionary spends
	JarFest      = "fest"      // mirrors event reservations
	JarEmergency = "emergency" // watched by the nudge rules
)

// Jar is a named savings bucket. Saved may overshoot Target; it never
// goes below zero.
type Jar struct {
	Key    string
	Name   string
	Target float64
	Saved  float64
}

// Pct returns save progress in [0, 1], clamped at 1 on overshoot.
func (j Jar) Pct() float64 {
	if j.Target <= 0 {
		return 0
	}
	pct := j.Saved / j.Target
	if pct > 1 {
		pct = 1
	}
	return pct
}
