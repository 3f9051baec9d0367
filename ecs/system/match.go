package system

import (
	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// MatchSystem ends the match the first tick any actor's health is zero.
// The winner is the actor left standing; a double knockout is a draw and
// leaves Winner empty.
type MatchSystem struct {
	clock common.Clock
}

func NewMatchSystem(clock common.Clock) *MatchSystem {
	return &MatchSystem{clock: clock}
}

func (s *MatchSystem) Update(w *ecs.World) {
	matchEnt, ok := ecs.First(w, component.MatchComponent.Kind())
	if !ok {
		return
	}
	match, _ := ecs.Get(w, matchEnt, component.MatchComponent.Kind())
	if match.State != component.MatchPlaying {
		return
	}

	var standing []string
	knockedOut := false
	ecs.ForEach2(w, component.ActorComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, actor *component.Actor, health *component.Health) {
		if health.Current <= 0 {
			knockedOut = true
			w.Events().Push(ecs.Event{Type: ecs.EventKO, Target: e})
			return
		}
		standing = append(standing, actor.Name)
	})
	if !knockedOut {
		return
	}

	match.State = component.MatchOver
	match.EndedAt = s.clock.Now()
	match.Winner = ""
	if len(standing) == 1 {
		match.Winner = standing[0]
	}
}
