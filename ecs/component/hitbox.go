package component

// Hitbox is the active attack region. It sits against the body on the
// facing side, OffsetY below the top edge.
type Hitbox struct {
	Width             float64
	Height            float64
	OffsetY           float64
	Damage            int
	InvulnerableTicks int
}

var HitboxComponent = NewComponent[Hitbox]()
