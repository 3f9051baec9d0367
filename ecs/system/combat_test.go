package system

import (
	"testing"
	"time"

	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

func TestAttackBox(t *testing.T) {
	body := component.Body{Width: 50, Height: 80}
	hb := component.Hitbox{Width: 50, Height: 40, OffsetY: 20}

	tests := []struct {
		name string
		tr   component.Transform
		want common.Rect
	}{
		{name: "facing right", tr: component.Transform{X: 200, Y: 100}, want: common.Rect{X: 250, Y: 120, Width: 50, Height: 40}},
		{name: "facing left", tr: component.Transform{X: 200, Y: 100, FacingLeft: true}, want: common.Rect{X: 150, Y: 120, Width: 50, Height: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttackBox(tt.tr, body, hb); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestTakeDamage(t *testing.T) {
	w := newTestWorld(t)
	e := newTestActor(t, w, "a", 0, 0)
	health, _ := ecs.Get(w, e, component.HealthComponent.Kind())

	if !TakeDamage(w, e, 10, 60) {
		t.Fatalf("expected first hit to land")
	}
	if health.Current != 90 {
		t.Fatalf("expected 90 health, got %d", health.Current)
	}
	inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind())
	if !ok || inv.Frames != 60 {
		t.Fatalf("expected 60 invulnerable frames, got %+v", inv)
	}

	if TakeDamage(w, e, 10, 60) {
		t.Fatalf("expected hit during invulnerability to be ignored")
	}
	if health.Current != 90 {
		t.Fatalf("expected health unchanged, got %d", health.Current)
	}
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	w := newTestWorld(t)
	e := newTestActor(t, w, "a", 0, 0)
	health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	health.Current = 10

	TakeDamage(w, e, 150, 60)

	if health.Current != 0 {
		t.Fatalf("expected health clamped to 0, got %d", health.Current)
	}
}

func TestCombatSystemOneHitPerAttack(t *testing.T) {
	clock := common.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w := newTestWorld(t)
	a := newTestActor(t, w, "a", 200, 500)
	b := newTestActor(t, w, "b", 260, 500)
	linkOpponents(w, a, b)

	attack, _ := ecs.Get(w, a, component.AttackComponent.Kind())
	StartAttack(attack, nil, clock.Now())

	sys := NewCombatSystem(clock)
	hits := 0
	for range 20 {
		sys.Update(w)
		clock.Advance(time.Second / 60)
		for _, evt := range w.Events().Drain() {
			if evt.Type == ecs.EventHit && evt.Source == a && evt.Target == b && evt.Amount == 10 {
				hits++
			}
		}
	}

	health, _ := ecs.Get(w, b, component.HealthComponent.Kind())
	if health.Current != 90 || hits != 1 {
		t.Fatalf("expected one hit for 10 damage, got health=%d hits=%d", health.Current, hits)
	}
	attacker, _ := ecs.Get(w, a, component.HealthComponent.Kind())
	if attacker.Current != 100 {
		t.Fatalf("expected attacker untouched, got %d", attacker.Current)
	}
}

func TestCombatSystemMissOutOfRange(t *testing.T) {
	clock := common.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w := newTestWorld(t)
	a := newTestActor(t, w, "a", 200, 500)
	b := newTestActor(t, w, "b", 300, 500)
	linkOpponents(w, a, b)

	attack, _ := ecs.Get(w, a, component.AttackComponent.Kind())
	StartAttack(attack, nil, clock.Now())
	NewCombatSystem(clock).Update(w)

	health, _ := ecs.Get(w, b, component.HealthComponent.Kind())
	if health.Current != 100 {
		t.Fatalf("expected touching edges to miss, got health=%d", health.Current)
	}
}

func TestCombatSystemExpiresAttackOnDeadline(t *testing.T) {
	clock := common.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w := newTestWorld(t)
	a := newTestActor(t, w, "a", 0, 500)

	attack, _ := ecs.Get(w, a, component.AttackComponent.Kind())
	StartAttack(attack, nil, clock.Now())
	sys := NewCombatSystem(clock)

	clock.Advance(499 * time.Millisecond)
	sys.Update(w)
	if !attack.Active {
		t.Fatalf("expected attack still active at 499ms")
	}

	clock.Advance(time.Millisecond)
	sys.Update(w)
	if attack.Active {
		t.Fatalf("expected attack closed at 500ms")
	}
}

func TestCombatSystemInvulnerabilityExpires(t *testing.T) {
	clock := common.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w := newTestWorld(t)
	a := newTestActor(t, w, "a", 0, 500)
	mustAdd(t, ecs.Add(w, a, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 3}))

	sys := NewCombatSystem(clock)
	for i := range 3 {
		if !ecs.Has(w, a, component.InvulnerableComponent.Kind()) {
			t.Fatalf("invulnerability removed early at tick %d", i)
		}
		sys.Update(w)
	}
	if ecs.Has(w, a, component.InvulnerableComponent.Kind()) {
		t.Fatalf("expected invulnerability removed after 3 ticks")
	}
}
