package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/match"
	"github.com/milk9111/brawler/prefabs"
)

type Game struct {
	match    *match.Match
	renderer *renderer
	gameOver *gameOverUI
	watcher  *prefabs.Watcher

	width, height int
}

func NewGame(m *match.Match, watcher *prefabs.Watcher, debug bool) *Game {
	s := m.Snapshot()
	return &Game{
		match:    m,
		renderer: newRenderer(debug),
		gameOver: newGameOverUI(match.DefaultRestartKey),
		watcher:  watcher,
		width:    int(s.Arena.Width),
		height:   int(s.Arena.Height),
	}
}

func (g *Game) Update() error {
	g.applyChanges()

	g.match.Resize(float64(g.width), float64(g.height))
	g.match.Tick()

	if s := g.match.Snapshot(); s.State == component.MatchOver {
		g.gameOver.SetWinner(s.Winner)
		g.gameOver.ui.Update()
	}
	return nil
}

// applyChanges drains pending hot reloads without blocking the frame.
func (g *Game) applyChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Events:
			switch change.Kind {
			case prefabs.ChangePrefab:
				if err := g.match.ReloadPrefab(change.Name); err != nil {
					slog.Warn("prefab reload failed", "prefab", change.Name, "err", err)
				}
			case prefabs.ChangeScript:
				g.match.ReloadScript(change.Name)
			}
		case err := <-g.watcher.Errors:
			slog.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.match.Snapshot()
	g.renderer.Draw(screen, s)
	if s.State == component.MatchOver {
		g.gameOver.ui.Draw(screen)
	}
}

// Layout keeps the arena the size of the window. The resize itself is
// applied on the next Update so the match is only mutated from Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
