package component

// Invulnerable marks an entity as temporarily immune to damage. The
// combat system counts Frames down each tick and removes the component
// when it reaches zero.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
