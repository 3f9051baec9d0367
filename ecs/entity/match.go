package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// NewMatch creates the match singleton in the playing state.
func NewMatch(w *ecs.World, id string, startedAt time.Time) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MatchComponent.Kind(), &component.Match{
		ID:        id,
		State:     component.MatchPlaying,
		StartedAt: startedAt,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("match: %w", err)
	}
	return e, nil
}

// NewFighters builds both fighters and links them as opponents.
func NewFighters(w *ecs.World, arena component.Arena, left, right string) (ecs.Entity, ecs.Entity, error) {
	a, err := BuildEntity(w, left, arena)
	if err != nil {
		return 0, 0, err
	}
	b, err := BuildEntity(w, right, arena)
	if err != nil {
		ecs.DestroyEntity(w, a)
		return 0, 0, err
	}

	actorA, okA := ecs.Get(w, a, component.ActorComponent.Kind())
	actorB, okB := ecs.Get(w, b, component.ActorComponent.Kind())
	if !okA || !okB {
		ecs.DestroyEntity(w, a)
		ecs.DestroyEntity(w, b)
		return 0, 0, fmt.Errorf("fighters: %q and %q must both define an actor", left, right)
	}
	actorA.Opponent = uint64(b)
	actorB.Opponent = uint64(a)
	return a, b, nil
}

// ResetFighter returns an actor to its spawn point in arena with full
// health and no transient state.
func ResetFighter(w *ecs.World, e ecs.Entity, arena component.Arena) {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = actor.Spawn.Point(arena)
		t.FacingLeft = actor.Spawn.FacingLeft
	}
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		b.VY = 0
	}
	if j, ok := ecs.Get(w, e, component.JumpComponent.Kind()); ok {
		j.State = component.JumpGrounded
	}
	if a, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok {
		a.Active = false
		a.Until = time.Time{}
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		h.Current = h.Max
	}
	if in, ok := ecs.Get(w, e, component.IntentComponent.Kind()); ok {
		*in = component.Intent{}
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Current = component.AnimRun
		anim.Frame = 0
		anim.FrameTimer = 0
	}
	ecs.Remove(w, e, component.InvulnerableComponent.Kind())
}
