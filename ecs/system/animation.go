package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// AnimationSystem derives the animation tag from attack and jump state and
// advances the frame index. Frames only advance while the actor is moving,
// jumping or attacking.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.AnimationComponent.Kind(), component.AttackComponent.Kind(), component.JumpComponent.Kind(), func(e ecs.Entity, anim *component.Animation, attack *component.Attack, jump *component.Jump) {
		anim.Current = AnimationFor(*attack, *jump)

		moving := false
		if in, ok := ecs.Get(w, e, component.IntentComponent.Kind()); ok {
			moving = in.Left || in.Right
		}
		if !moving && anim.Current == component.AnimRun {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.Frames <= 0 {
			return
		}
		if anim.Frame >= def.Frames {
			anim.Frame %= def.Frames
		}

		anim.FrameTimer++
		if anim.FrameTimer >= def.FrameDelay {
			anim.Frame = (anim.Frame + 1) % def.Frames
			anim.FrameTimer = 0
		}
	})
}

// AnimationFor picks the tag: attacking wins over airborne, else run.
func AnimationFor(attack component.Attack, jump component.Jump) component.AnimState {
	switch {
	case attack.Active:
		return component.AnimAttack
	case jump.Airborne():
		return component.AnimJump
	default:
		return component.AnimRun
	}
}
