package component

// Arena stores the play area. The floor occupies the bottom FloorHeight
// units.
type Arena struct {
	Width       float64
	Height      float64
	FloorHeight float64
}

var ArenaComponent = NewComponent[Arena]()
