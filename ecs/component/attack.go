package component

import "time"

// Attack is the attack window. Until is a deadline on the match clock; the
// window closes on the first tick at or after it.
type Attack struct {
	Active   bool
	Until    time.Time
	Duration time.Duration
}

var AttackComponent = NewComponent[Attack]()
