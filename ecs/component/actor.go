package component

// Side is an actor's fixed slot in the match.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Spawn is where an actor starts a match, relative to the arena so a
// restart after a resize still lands inside it.
type Spawn struct {
	XRatio     float64
	YOffset    float64
	FacingLeft bool
}

// Point resolves the spawn against the arena: x as a fraction of the width,
// y measured up from the bottom edge.
func (s Spawn) Point(a Arena) (x, y float64) {
	return s.XRatio * a.Width, a.Height - s.YOffset
}

// Actor is the identity of a fighter. Opponent is the other fighter's
// entity handle, fixed when the match is built.
type Actor struct {
	Name     string
	Side     Side
	Opponent uint64
	Spawn    Spawn
}

var ActorComponent = NewComponent[Actor]()
