package component

type Platform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var PlatformComponent = NewComponent[Platform]()
