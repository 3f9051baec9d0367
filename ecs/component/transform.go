package component

// Transform is an actor's top-left position in arena units. FacingLeft is
// the flipped flag: attacks extend to the left of the body when set.
type Transform struct {
	X          float64
	Y          float64
	FacingLeft bool
}

var TransformComponent = NewComponent[Transform]()
