package component

// Body is the axis-aligned box and vertical velocity integrated by the
// physics system. Horizontal motion is not integrated; it is applied
// directly from intent each tick.
type Body struct {
	Width  float64
	Height float64
	VY     float64
}

var BodyComponent = NewComponent[Body]()
