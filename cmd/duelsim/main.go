// Command duelsim plays bot-vs-bot matches without a window, on a virtual
// clock, and reports how each side fared. It is meant for checking fighter
// tuning and layout changes.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/match"
)

type result struct {
	winner string
	ticks  int
	stats  match.Stats
}

type summary struct {
	wins       map[string]int
	draws      int
	timeouts   int
	totalTicks int
	matches    int
	attacks    [2]int
	hits       [2]int
}

func main() {
	n := flag.Int("n", 100, "number of matches")
	seed := flag.Uint64("seed", 1, "layout seed")
	maxTicks := flag.Int("ticks", 60*common.TPS, "tick limit per match")
	left := flag.String("left", "chaser.tengo", "script driving player 1")
	right := flag.String("right", "chaser.tengo", "script driving player 2")
	width := flag.Float64("width", common.BaseWidth, "arena width")
	height := flag.Float64("height", common.BaseHeight, "arena height")
	verbose := flag.Bool("v", false, "log match lifecycle")
	flag.Parse()

	logOut := io.Discard
	if *verbose {
		logOut = os.Stderr
	}

	clock := common.NewManualClock(time.Unix(0, 0))
	m, err := match.New(match.Config{
		Width:    *width,
		Height:   *height,
		LeftBot:  *left,
		RightBot: *right,
		Clock:    clock,
		Rand:     rand.New(rand.NewPCG(*seed, *seed>>1)),
		Logger:   slog.New(slog.NewTextHandler(logOut, nil)),
	})
	if err != nil {
		log.Fatal(err)
	}

	sum := summary{wins: map[string]int{}}
	for i := 0; i < *n; i++ {
		if i > 0 {
			m.Restart()
		}
		sum.add(play(m, clock, *maxTicks))
	}
	sum.print(os.Stdout, m.Snapshot())
}

// play ticks one match at a fixed 60 TPS until a knockout or the limit.
func play(m *match.Match, clock *common.ManualClock, maxTicks int) result {
	frame := time.Second / common.TPS
	for tick := 1; tick <= maxTicks; tick++ {
		m.Tick()
		clock.Advance(frame)
		if m.State() == component.MatchOver {
			snap := m.Snapshot()
			return result{winner: snap.Winner, ticks: tick, stats: snap.Stats}
		}
	}
	return result{ticks: -1, stats: m.Snapshot().Stats}
}

func (s *summary) add(r result) {
	s.matches++
	for i := range s.hits {
		s.attacks[i] += r.stats.Attacks[i]
		s.hits[i] += r.stats.Hits[i]
	}
	switch {
	case r.ticks < 0:
		s.timeouts++
		return
	case r.winner == "":
		s.draws++
	default:
		s.wins[r.winner]++
	}
	s.totalTicks += r.ticks
}

func (s *summary) print(w io.Writer, snap match.Snapshot) {
	fmt.Fprintf(w, "matches:  %d\n", s.matches)
	for i, a := range snap.Actors {
		fmt.Fprintf(w, "%-9s %d wins, %d/%d attacks landed\n", a.Name+":", s.wins[a.Name], s.hits[i], s.attacks[i])
	}
	fmt.Fprintf(w, "draws:    %d\n", s.draws)
	fmt.Fprintf(w, "timeouts: %d\n", s.timeouts)
	if finished := s.matches - s.timeouts; finished > 0 {
		avg := time.Duration(s.totalTicks/finished) * time.Second / common.TPS
		fmt.Fprintf(w, "average:  %s\n", match.FormatElapsed(avg))
	}
}
