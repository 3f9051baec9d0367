package system

import (
	"testing"
	"time"

	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

func TestJumpSequence(t *testing.T) {
	fighter := component.DefaultFighter()
	body := component.Body{}
	jump := component.Jump{}

	if !Jump(&jump, &body, &fighter) {
		t.Fatalf("expected first jump")
	}
	if body.VY != -15 || jump.State != component.JumpAirborne {
		t.Fatalf("expected vy=-15 airborne, got vy=%v %v", body.VY, jump.State)
	}

	body.VY = 3
	if !Jump(&jump, &body, &fighter) {
		t.Fatalf("expected double jump")
	}
	if !approx(body.VY, -12) || jump.State != component.JumpDoubleUsed {
		t.Fatalf("expected vy=-12 double_used, got vy=%v %v", body.VY, jump.State)
	}

	body.VY = 5
	if Jump(&jump, &body, &fighter) {
		t.Fatalf("expected third jump to be refused")
	}
	if body.VY != 5 {
		t.Fatalf("expected vy unchanged, got %v", body.VY)
	}
}

func TestStartAttackIgnoredWhileActive(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	attack := component.Attack{}
	anim := component.Animation{Frame: 2}

	if !StartAttack(&attack, &anim, start) {
		t.Fatalf("expected attack to start")
	}
	if !attack.Active || !attack.Until.Equal(start.Add(DefaultAttackDuration)) || anim.Frame != 0 {
		t.Fatalf("unexpected attack state %+v frame=%d", attack, anim.Frame)
	}

	anim.Frame = 1
	if StartAttack(&attack, &anim, start.Add(100*time.Millisecond)) {
		t.Fatalf("expected second attack to be ignored")
	}
	if !attack.Until.Equal(start.Add(DefaultAttackDuration)) || anim.Frame != 1 {
		t.Fatalf("expected window and frame untouched, got %+v frame=%d", attack, anim.Frame)
	}
}

func TestControllerSystemConsumesEdges(t *testing.T) {
	clock := common.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w := newTestWorld(t)
	e := newTestActor(t, w, "a", 100, 590)
	intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())
	intent.Jump = true
	intent.Attack = true
	intent.Left = true

	sys := NewControllerSystem(clock)
	sys.Update(w)

	if intent.Jump || intent.Attack {
		t.Fatalf("expected jump and attack edges consumed, got %+v", intent)
	}
	if !intent.Left {
		t.Fatalf("expected held movement untouched")
	}
	body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	if body.VY != -15 {
		t.Fatalf("expected jump velocity, got %v", body.VY)
	}
	attack, _ := ecs.Get(w, e, component.AttackComponent.Kind())
	if !attack.Active {
		t.Fatalf("expected attack active")
	}

	events := w.Events().Drain()
	if len(events) != 1 || events[0].Type != ecs.EventAttack || events[0].Source != e {
		t.Fatalf("expected one attack event, got %+v", events)
	}

	intent.Attack = true
	sys.Update(w)
	if n := w.Events().Len(); n != 0 {
		t.Fatalf("expected no event for attack during open window, got %d", n)
	}
}
