package system

import (
	"testing"
	"time"

	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

func newTestMatch(t *testing.T, w *ecs.World) *component.Match {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.MatchComponent.Kind(), &component.Match{State: component.MatchPlaying}))
	m, _ := ecs.Get(w, e, component.MatchComponent.Kind())
	return m
}

func TestMatchSystem(t *testing.T) {
	tests := []struct {
		name       string
		healthA    int
		healthB    int
		wantState  component.MatchState
		wantWinner string
	}{
		{name: "both standing", healthA: 100, healthB: 10, wantState: component.MatchPlaying},
		{name: "b knocked out", healthA: 30, healthB: 0, wantState: component.MatchOver, wantWinner: "a"},
		{name: "a knocked out", healthA: 0, healthB: 100, wantState: component.MatchOver, wantWinner: "b"},
		{name: "double knockout is a draw", healthA: 0, healthB: 0, wantState: component.MatchOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := common.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
			w := newTestWorld(t)
			match := newTestMatch(t, w)
			a := newTestActor(t, w, "a", 100, 590)
			b := newTestActor(t, w, "b", 800, 590)
			ha, _ := ecs.Get(w, a, component.HealthComponent.Kind())
			hb, _ := ecs.Get(w, b, component.HealthComponent.Kind())
			ha.Current, hb.Current = tt.healthA, tt.healthB

			NewMatchSystem(clock).Update(w)

			if match.State != tt.wantState || match.Winner != tt.wantWinner {
				t.Fatalf("expected %s winner=%q, got %s winner=%q", tt.wantState, tt.wantWinner, match.State, match.Winner)
			}
			if tt.wantState == component.MatchOver && !match.EndedAt.Equal(clock.Now()) {
				t.Fatalf("expected EndedAt stamped, got %v", match.EndedAt)
			}
		})
	}
}

func TestMatchSystemIgnoresFinishedMatch(t *testing.T) {
	clock := common.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w := newTestWorld(t)
	match := newTestMatch(t, w)
	match.State = component.MatchOver
	match.Winner = "a"
	b := newTestActor(t, w, "b", 800, 590)
	newTestActor(t, w, "a", 100, 590)
	hb, _ := ecs.Get(w, b, component.HealthComponent.Kind())
	hb.Current = 0

	NewMatchSystem(clock).Update(w)

	if match.Winner != "a" || w.Events().Len() != 0 {
		t.Fatalf("expected finished match untouched, got winner=%q events=%d", match.Winner, w.Events().Len())
	}
}
