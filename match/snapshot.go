package match

import (
	"fmt"
	"image/color"
	"time"

	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/ecs/entity"
	"github.com/milk9111/brawler/ecs/system"
)

// ActorView is the read-only state a renderer needs for one fighter.
type ActorView struct {
	Name       string
	Side       component.Side
	X, Y       float64
	Width      float64
	Height     float64
	FacingLeft bool
	Anim       component.AnimState
	Frame      int
	Health     int
	MaxHealth  int
	Hit        bool
	Attacking  bool
	Color      color.NRGBA

	HurtBox common.Rect
	// HitBox is only meaningful while Attacking.
	HitBox common.Rect
}

// Snapshot is a copy of everything drawable. Mutating it has no effect on
// the match.
type Snapshot struct {
	ID        string
	State     component.MatchState
	Winner    string
	Elapsed   time.Duration
	Arena     component.Arena
	Platforms []component.Platform
	Actors    [2]ActorView
	Stats     Stats
}

// Snapshot copies the current match state.
func (m *Match) Snapshot() Snapshot {
	rec := m.record()
	s := Snapshot{
		ID:        rec.ID,
		State:     rec.State,
		Winner:    rec.Winner,
		Elapsed:   m.elapsed(rec),
		Arena:     m.bounds(),
		Platforms: entity.Platforms(m.world),
		Stats:     m.stats,
	}
	for i, e := range m.fighters {
		s.Actors[i] = actorView(m.world, e)
	}
	return s
}

// elapsed stops counting once the match is over.
func (m *Match) elapsed(rec *component.Match) time.Duration {
	end := m.clock.Now()
	if rec.State == component.MatchOver {
		end = rec.EndedAt
	}
	if d := end.Sub(rec.StartedAt); d > 0 {
		return d
	}
	return 0
}

func actorView(w *ecs.World, e ecs.Entity) ActorView {
	var v ActorView
	if a, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		v.Name, v.Side = a.Name, a.Side
	}
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	if t != nil && body != nil {
		v.X, v.Y, v.FacingLeft = t.X, t.Y, t.FacingLeft
		v.Width, v.Height = body.Width, body.Height
		v.HurtBox = common.Rect{X: t.X, Y: t.Y, Width: body.Width, Height: body.Height}
		if hurt, ok := ecs.Get(w, e, component.HurtboxComponent.Kind()); ok {
			v.HurtBox = system.HurtBox(*t, *hurt)
		}
		if hb, ok := ecs.Get(w, e, component.HitboxComponent.Kind()); ok {
			v.HitBox = system.AttackBox(*t, *body, *hb)
		}
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		v.Anim, v.Frame = anim.Current, anim.Frame
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		v.Health, v.MaxHealth = h.Current, h.Max
	}
	if a, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok {
		v.Attacking = a.Active
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		v.Color = s.Color
	}
	v.Hit = ecs.Has(w, e, component.InvulnerableComponent.Kind())
	return v
}

// FormatElapsed renders a match duration as MM:SS.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
