package main

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/match"
)

func TestSummaryCounts(t *testing.T) {
	sum := summary{wins: map[string]int{}}
	for _, r := range []result{
		{winner: "Player 1", ticks: 600, stats: match.Stats{Attacks: [2]int{12, 4}, Hits: [2]int{10, 1}}},
		{winner: "Player 1", ticks: 1200},
		{winner: "", ticks: 300},
		{ticks: -1},
	} {
		sum.add(r)
	}

	if sum.matches != 4 || sum.wins["Player 1"] != 2 || sum.draws != 1 || sum.timeouts != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}

	var buf bytes.Buffer
	snap := match.Snapshot{Actors: [2]match.ActorView{{Name: "Player 1"}, {Name: "Player 2"}}}
	sum.print(&buf, snap)
	out := buf.String()
	// (600+1200+300)/3 ticks = 700 ticks = 11.67s
	for _, want := range []string{"matches:  4", "Player 1: 2 wins, 10/12 attacks landed", "Player 2: 0 wins, 1/4 attacks landed", "draws:    1", "timeouts: 1", "average:  00:11"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPlayStopsAtTickLimit(t *testing.T) {
	clock := common.NewManualClock(time.Unix(0, 0))
	m, err := match.New(match.Config{
		LeftBot:  "idle.tengo",
		RightBot: "idle.tengo",
		Clock:    clock,
		Rand:     rand.New(rand.NewPCG(3, 4)),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("new match: %v", err)
	}

	if r := play(m, clock, 120); r.ticks != -1 {
		t.Fatalf("expected two idle bots to time out, got %+v", r)
	}
	if got := clock.Now().Sub(time.Unix(0, 0)); got != 120*(time.Second/common.TPS) {
		t.Fatalf("expected 120 frames of virtual time, got %v", got)
	}
}
