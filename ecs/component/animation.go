package component

// AnimState is the tag the renderer picks a sprite strip by.
type AnimState string

const (
	AnimRun    AnimState = "run"
	AnimJump   AnimState = "jump"
	AnimAttack AnimState = "attack"
)

type AnimationDef struct {
	Frames     int
	FrameDelay int
}

type Animation struct {
	Defs       map[AnimState]AnimationDef
	Current    AnimState
	Frame      int
	FrameTimer int
}

var AnimationComponent = NewComponent[Animation]()
