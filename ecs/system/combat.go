package system

import (
	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// DefaultInvulnerableTicks is how long a hit actor ignores further damage.
const DefaultInvulnerableTicks = 60

// CombatSystem closes expired attack windows, counts down invulnerability
// and applies hits from open attack windows to the opponent.
type CombatSystem struct {
	clock common.Clock
}

func NewCombatSystem(clock common.Clock) *CombatSystem {
	return &CombatSystem{clock: clock}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := s.clock.Now()

	ecs.ForEach(w, component.AttackComponent.Kind(), func(_ ecs.Entity, attack *component.Attack) {
		if attack.Active && !now.Before(attack.Until) {
			attack.Active = false
		}
	})

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Frames > 0 {
			inv.Frames--
		}
		if inv.Frames <= 0 {
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})

	ecs.ForEach4(w, component.ActorComponent.Kind(), component.AttackComponent.Kind(), component.TransformComponent.Kind(), component.HitboxComponent.Kind(), func(e ecs.Entity, actor *component.Actor, attack *component.Attack, t *component.Transform, hb *component.Hitbox) {
		if !attack.Active {
			return
		}
		body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
		if !ok {
			return
		}

		target := ecs.Entity(actor.Opponent)
		tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}
		hurt, ok := ecs.Get(w, target, component.HurtboxComponent.Kind())
		if !ok {
			return
		}

		if !AttackBox(*t, *body, *hb).Intersects(HurtBox(*tt, *hurt)) {
			return
		}
		if TakeDamage(w, target, hb.Damage, hb.InvulnerableTicks) {
			w.Events().Push(ecs.Event{Type: ecs.EventHit, Source: e, Target: target, Amount: hb.Damage})
		}
	})
}

// AttackBox places the hitbox against the body on the facing side.
func AttackBox(t component.Transform, body component.Body, hb component.Hitbox) common.Rect {
	x := t.X + body.Width
	if t.FacingLeft {
		x = t.X - hb.Width
	}
	return common.Rect{X: x, Y: t.Y + hb.OffsetY, Width: hb.Width, Height: hb.Height}
}

func HurtBox(t component.Transform, hurt component.Hurtbox) common.Rect {
	return common.Rect{X: t.X + hurt.OffsetX, Y: t.Y + hurt.OffsetY, Width: hurt.Width, Height: hurt.Height}
}

// TakeDamage subtracts amount from the target's health, clamped at zero,
// and starts an invulnerability window. It is a no-op while the target is
// already invulnerable and reports whether damage landed.
func TakeDamage(w *ecs.World, target ecs.Entity, amount, invulnerableTicks int) bool {
	if ecs.Has(w, target, component.InvulnerableComponent.Kind()) {
		return false
	}
	health, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	if invulnerableTicks <= 0 {
		invulnerableTicks = DefaultInvulnerableTicks
	}
	health.Current = int(common.Clamp(float64(health.Current-amount), 0, float64(health.Max)))
	_ = ecs.Add(w, target, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: invulnerableTicks})
	return true
}
