package system

import (
	"math"
	"testing"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

var testArena = component.Arena{Width: 1280, Height: 720, FloorHeight: 50}

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	arena := testArena
	if err := ecs.Add(w, e, component.ArenaComponent.Kind(), &arena); err != nil {
		t.Fatalf("add arena: %v", err)
	}
	return w
}

// newTestActor adds a 50x80 fighter with default tuning at (x, y).
func newTestActor(t *testing.T, w *ecs.World, name string, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	fighter := component.DefaultFighter()
	mustAdd(t, ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{Name: name}))
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	mustAdd(t, ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: 50, Height: 80}))
	mustAdd(t, ecs.Add(w, e, component.FighterComponent.Kind(), &fighter))
	mustAdd(t, ecs.Add(w, e, component.JumpComponent.Kind(), &component.Jump{}))
	mustAdd(t, ecs.Add(w, e, component.IntentComponent.Kind(), &component.Intent{}))
	mustAdd(t, ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 100, Max: 100}))
	mustAdd(t, ecs.Add(w, e, component.AttackComponent.Kind(), &component.Attack{}))
	mustAdd(t, ecs.Add(w, e, component.HitboxComponent.Kind(), &component.Hitbox{Width: 50, Height: 40, OffsetY: 20, Damage: 10, InvulnerableTicks: 60}))
	mustAdd(t, ecs.Add(w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{Width: 50, Height: 80}))
	return e
}

// linkOpponents wires a and b as each other's target.
func linkOpponents(w *ecs.World, a, b ecs.Entity) {
	actorA, _ := ecs.Get(w, a, component.ActorComponent.Kind())
	actorB, _ := ecs.Get(w, b, component.ActorComponent.Kind())
	actorA.Opponent = uint64(b)
	actorB.Opponent = uint64(a)
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
