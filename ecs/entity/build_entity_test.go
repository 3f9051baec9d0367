package entity

import (
	"testing"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

var testArena = component.Arena{Width: 1280, Height: 720, FloorHeight: 50}

func TestBuildEntityFighterOne(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "fighter_one.yaml", testArena)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		t.Fatalf("expected actor component")
	}
	if actor.Name != "Player 1" || actor.Side != component.SideLeft {
		t.Fatalf("unexpected actor %+v", actor)
	}
	if x, y := actor.Spawn.Point(testArena); x != 256 || y != 570 {
		t.Fatalf("expected spawn (256,570), got (%v,%v)", x, y)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 256 || tr.Y != 570 || tr.FacingLeft {
		t.Fatalf("unexpected transform %+v", tr)
	}

	hurt, ok := ecs.Get(w, e, component.HurtboxComponent.Kind())
	if !ok || hurt.Width != 50 || hurt.Height != 80 {
		t.Fatalf("expected full-body hurtbox, got %+v", hurt)
	}

	health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	if health.Current != 100 || health.Max != 100 {
		t.Fatalf("unexpected health %+v", health)
	}

	controls, _ := ecs.Get(w, e, component.ControlsComponent.Kind())
	if *controls != (component.Controls{Left: "A", Right: "D", Jump: "W", Attack: "F"}) {
		t.Fatalf("unexpected controls %+v", controls)
	}

	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Defs[component.AnimRun] != (component.AnimationDef{Frames: 3, FrameDelay: 8}) {
		t.Fatalf("unexpected run animation %+v", anim.Defs[component.AnimRun])
	}

	for name, has := range map[string]bool{
		"intent":   ecs.Has(w, e, component.IntentComponent.Kind()),
		"jump":     ecs.Has(w, e, component.JumpComponent.Kind()),
		"fighter":  ecs.Has(w, e, component.FighterComponent.Kind()),
		"sprite":   ecs.Has(w, e, component.SpriteComponent.Kind()),
		"attack":   ecs.Has(w, e, component.AttackComponent.Kind()),
		"hitbox":   ecs.Has(w, e, component.HitboxComponent.Kind()),
		"actorTag": ecs.Has(w, e, component.ActorTagComponent.Kind()),
	} {
		if !has {
			t.Fatalf("expected %s component", name)
		}
	}
}

func TestBuildEntityMissingPrefab(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildEntity(w, "no_such_fighter.yaml", testArena); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("expected no entities left behind")
	}
}

func TestNewFightersLinksOpponents(t *testing.T) {
	w := ecs.NewWorld()
	a, b, err := NewFighters(w, testArena, "fighter_one.yaml", "fighter_two.yaml")
	if err != nil {
		t.Fatalf("fighters: %v", err)
	}

	actorA, _ := ecs.Get(w, a, component.ActorComponent.Kind())
	actorB, _ := ecs.Get(w, b, component.ActorComponent.Kind())
	if ecs.Entity(actorA.Opponent) != b || ecs.Entity(actorB.Opponent) != a {
		t.Fatalf("expected linked opponents, got %v and %v", actorA.Opponent, actorB.Opponent)
	}

	tb, _ := ecs.Get(w, b, component.TransformComponent.Kind())
	if tb.X != 1024 || !tb.FacingLeft {
		t.Fatalf("expected player 2 at x=1024 facing left, got %+v", tb)
	}
}

func TestApplyTuningKeepsRuntimeState(t *testing.T) {
	w := ecs.NewWorld()
	a, b, err := NewFighters(w, testArena, "fighter_one.yaml", "fighter_two.yaml")
	if err != nil {
		t.Fatalf("fighters: %v", err)
	}

	tr, _ := ecs.Get(w, a, component.TransformComponent.Kind())
	tr.X, tr.Y = 400, 300
	health, _ := ecs.Get(w, a, component.HealthComponent.Kind())
	health.Current = 40

	if err := ApplyTuning(w, a, "fighter_one.yaml", testArena); err != nil {
		t.Fatalf("apply tuning: %v", err)
	}

	tr, _ = ecs.Get(w, a, component.TransformComponent.Kind())
	if tr.X != 400 || tr.Y != 300 {
		t.Fatalf("expected position kept, got (%v,%v)", tr.X, tr.Y)
	}
	health, _ = ecs.Get(w, a, component.HealthComponent.Kind())
	if health.Current != 40 {
		t.Fatalf("expected health kept at 40, got %d", health.Current)
	}
	actor, _ := ecs.Get(w, a, component.ActorComponent.Kind())
	if ecs.Entity(actor.Opponent) != b {
		t.Fatalf("expected opponent kept")
	}
}

func TestResetFighter(t *testing.T) {
	w := ecs.NewWorld()
	_, b, err := NewFighters(w, testArena, "fighter_one.yaml", "fighter_two.yaml")
	if err != nil {
		t.Fatalf("fighters: %v", err)
	}

	tr, _ := ecs.Get(w, b, component.TransformComponent.Kind())
	tr.X, tr.FacingLeft = 10, false
	body, _ := ecs.Get(w, b, component.BodyComponent.Kind())
	body.VY = 7
	jump, _ := ecs.Get(w, b, component.JumpComponent.Kind())
	jump.State = component.JumpDoubleUsed
	health, _ := ecs.Get(w, b, component.HealthComponent.Kind())
	health.Current = 0
	_ = ecs.Add(w, b, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 30})

	ResetFighter(w, b, testArena)

	if tr.X != 1024 || tr.Y != 570 || !tr.FacingLeft {
		t.Fatalf("expected spawn transform, got %+v", tr)
	}
	if body.VY != 0 || jump.State != component.JumpGrounded || health.Current != 100 {
		t.Fatalf("expected transient state cleared, got vy=%v jump=%v health=%d", body.VY, jump.State, health.Current)
	}
	if ecs.Has(w, b, component.InvulnerableComponent.Kind()) {
		t.Fatalf("expected invulnerability cleared")
	}
}

func TestReplacePlatformsKeepsOrder(t *testing.T) {
	w := ecs.NewWorld()
	first := []component.Platform{{X: 1, Width: 10, Height: 15}, {X: 2, Width: 10, Height: 15}}
	if err := ReplacePlatforms(w, first); err != nil {
		t.Fatalf("replace: %v", err)
	}

	second := []component.Platform{{X: 30, Width: 10, Height: 15}, {X: 10, Width: 10, Height: 15}, {X: 20, Width: 10, Height: 15}}
	if err := ReplacePlatforms(w, second); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got := Platforms(w)
	if len(got) != len(second) {
		t.Fatalf("expected %d platforms, got %d", len(second), len(got))
	}
	for i := range second {
		if got[i] != second[i] {
			t.Fatalf("platform %d: expected %+v, got %+v", i, second[i], got[i])
		}
	}
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    component.Side
		wantErr bool
	}{
		{in: "", want: component.SideLeft},
		{in: "left", want: component.SideLeft},
		{in: " Right ", want: component.SideRight},
		{in: "middle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSide(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("parseSide(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestResetFighterFollowsResizedArena(t *testing.T) {
	w := ecs.NewWorld()
	a, _, err := NewFighters(w, testArena, "fighter_one.yaml", "fighter_two.yaml")
	if err != nil {
		t.Fatalf("fighters: %v", err)
	}

	resized := component.Arena{Width: 1000, Height: 500, FloorHeight: 50}
	ResetFighter(w, a, resized)

	tr, _ := ecs.Get(w, a, component.TransformComponent.Kind())
	if tr.X != 200 || tr.Y != 350 || tr.FacingLeft {
		t.Fatalf("expected spawn (200,350) facing right, got %+v", tr)
	}
}
