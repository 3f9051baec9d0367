package component

// Hurtbox is the region that receives damage, relative to the transform.
type Hurtbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var HurtboxComponent = NewComponent[Hurtbox]()
