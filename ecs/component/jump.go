package component

// JumpState tracks the grounded-to-airborne cycle.
type JumpState int

const (
	JumpGrounded JumpState = iota
	JumpAirborne
	JumpDoubleUsed
)

func (s JumpState) String() string {
	switch s {
	case JumpGrounded:
		return "grounded"
	case JumpAirborne:
		return "airborne"
	case JumpDoubleUsed:
		return "double_used"
	default:
		return "unknown"
	}
}

type Jump struct {
	State JumpState
}

// Airborne reports whether the actor has left the ground by jumping.
// Walking off a ledge does not count; only a jump or a landing moves the
// state.
func (j Jump) Airborne() bool {
	return j.State != JumpGrounded
}

var JumpComponent = NewComponent[Jump]()
