package component

import "image/color"

// Sprite is how the renderer draws an actor. The fighter is a tinted
// rectangle; Color also tints the winner banner.
type Sprite struct {
	Color color.NRGBA
}

var SpriteComponent = NewComponent[Sprite]()
