package system

import (
	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// PhysicsSystem integrates vertical motion, resolves landings and applies
// horizontal movement. Platforms are tested in arena order and the first
// match wins.
type PhysicsSystem struct {
	platforms []component.Platform
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	arenaEnt, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		return
	}
	arena, _ := ecs.Get(w, arenaEnt, component.ArenaComponent.Kind())

	s.platforms = s.platforms[:0]
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		s.platforms = append(s.platforms, *p)
	})

	ecs.ForEach4(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), component.FighterComponent.Kind(), component.JumpComponent.Kind(), func(e ecs.Entity, t *component.Transform, body *component.Body, fighter *component.Fighter, jump *component.Jump) {
		wasAirborne := jump.Airborne()

		Integrate(t, body, fighter)
		if ResolveLanding(t, body, jump, fighter, s.platforms, *arena) && wasAirborne {
			w.Events().Push(ecs.Event{Type: ecs.EventLanded, Source: e})
		}

		var intent component.Intent
		if in, ok := ecs.Get(w, e, component.IntentComponent.Kind()); ok {
			intent = *in
		}
		MoveHorizontal(t, body, fighter, intent, arena.Width)
	})
}

// Integrate applies one tick of gravity and moves the body by the new
// velocity. Velocity is clamped after the move, to [JumpForce, MaxFallSpeed].
func Integrate(t *component.Transform, body *component.Body, fighter *component.Fighter) {
	body.VY += fighter.Gravity
	t.Y += body.VY
	body.VY = common.Clamp(body.VY, fighter.JumpForce, fighter.MaxFallSpeed)
}

// ResolveLanding snaps a falling or resting body onto the first platform
// whose landing band contains its bottom edge, or onto the floor. It
// reports whether the body is supported this tick.
func ResolveLanding(t *component.Transform, body *component.Body, jump *component.Jump, fighter *component.Fighter, platforms []component.Platform, arena component.Arena) bool {
	if body.VY >= 0 {
		bottom := t.Y + body.Height
		for _, p := range platforms {
			if bottom >= p.Y &&
				bottom <= p.Y+p.Height+fighter.LandingMargin &&
				t.X+body.Width > p.X &&
				t.X < p.X+p.Width {
				land(t, body, jump, p.Y)
				return true
			}
		}
	}

	floor := arena.Height - body.Height - arena.FloorHeight
	if t.Y > floor {
		land(t, body, jump, arena.Height-arena.FloorHeight)
		return true
	}
	return false
}

func land(t *component.Transform, body *component.Body, jump *component.Jump, surface float64) {
	t.Y = surface - body.Height
	body.VY = 0
	jump.State = component.JumpGrounded
}

// MoveHorizontal applies held left/right input and clamps x to the arena.
// Holding both keys cancels the motion and leaves the actor facing right.
func MoveHorizontal(t *component.Transform, body *component.Body, fighter *component.Fighter, intent component.Intent, arenaWidth float64) {
	if intent.Left {
		t.X -= fighter.Speed
		t.FacingLeft = true
	}
	if intent.Right {
		t.X += fighter.Speed
		t.FacingLeft = false
	}
	t.X = common.Clamp(t.X, 0, arenaWidth-body.Width)
}
