package component

// Fighter holds per-actor movement tuning.
type Fighter struct {
	Speed           float64
	Gravity         float64
	JumpForce       float64
	DoubleJumpScale float64
	MaxFallSpeed    float64
	LandingMargin   float64
}

// DefaultFighter returns the tuning the arena layout is balanced around.
func DefaultFighter() Fighter {
	return Fighter{
		Speed:           5,
		Gravity:         0.6,
		JumpForce:       -15,
		DoubleJumpScale: 0.8,
		MaxFallSpeed:    15,
		LandingMargin:   10,
	}
}

var FighterComponent = NewComponent[Fighter]()
