package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/match"
	"github.com/milk9111/brawler/prefabs"
)

func main() {
	bot := flag.String("bot", "", "tengo script in prefabs/scripts that drives player 2")
	watch := flag.Bool("watch", false, "reload prefabs and scripts from ./prefabs when they change")
	seed := flag.Uint64("seed", 0, "platform layout seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "draw hit and hurt boxes")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("brawler")
	ebiten.SetTPS(common.TPS)

	m, err := match.New(match.Config{
		Width:    common.BaseWidth,
		Height:   common.BaseHeight,
		RightBot: *bot,
		Keys:     newEbitenKeys(),
		Rand:     rand.New(rand.NewPCG(*seed, *seed>>1)),
	})
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("layout seed", "seed", *seed)

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.WatchDisk()
		if err != nil {
			slog.Error("prefab watcher disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := ebiten.RunGame(NewGame(m, watcher, *debug)); err != nil {
		log.Fatal(err)
	}
}
