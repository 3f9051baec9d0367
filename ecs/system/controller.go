package system

import (
	"time"

	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// DefaultAttackDuration is the attack window length on the match clock.
const DefaultAttackDuration = 500 * time.Millisecond

// ControllerSystem applies the discrete intents: jump and attack. Both are
// consumed on the tick they are seen.
type ControllerSystem struct {
	clock common.Clock
}

func NewControllerSystem(clock common.Clock) *ControllerSystem {
	return &ControllerSystem{clock: clock}
}

func (s *ControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach4(w, component.IntentComponent.Kind(), component.JumpComponent.Kind(), component.BodyComponent.Kind(), component.FighterComponent.Kind(), func(e ecs.Entity, intent *component.Intent, jump *component.Jump, body *component.Body, fighter *component.Fighter) {
		if intent.Jump {
			Jump(jump, body, fighter)
		}
		if intent.Attack {
			attack, ok := ecs.Get(w, e, component.AttackComponent.Kind())
			if ok {
				anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
				if StartAttack(attack, anim, s.clock.Now()) {
					w.Events().Push(ecs.Event{Type: ecs.EventAttack, Source: e})
				}
			}
		}
		intent.Jump = false
		intent.Attack = false
	})
}

// Jump performs a first jump from the ground or the one double jump allowed
// while airborne. It reports whether velocity changed.
func Jump(jump *component.Jump, body *component.Body, fighter *component.Fighter) bool {
	switch jump.State {
	case component.JumpGrounded:
		body.VY = fighter.JumpForce
		jump.State = component.JumpAirborne
		return true
	case component.JumpAirborne:
		body.VY = fighter.JumpForce * fighter.DoubleJumpScale
		jump.State = component.JumpDoubleUsed
		return true
	default:
		return false
	}
}

// StartAttack opens the attack window unless one is already open. The frame
// index restarts so the attack strip plays from its first frame.
func StartAttack(attack *component.Attack, anim *component.Animation, now time.Time) bool {
	if attack.Active {
		return false
	}
	d := attack.Duration
	if d <= 0 {
		d = DefaultAttackDuration
	}
	attack.Active = true
	attack.Until = now.Add(d)
	if anim != nil {
		anim.Frame = 0
	}
	return true
}
