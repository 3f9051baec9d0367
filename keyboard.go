package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys reads the keyboard through ebiten. Key names are the ones
// ebiten.Key marshals to, such as "A", "ArrowLeft" or "Slash".
type ebitenKeys struct {
	keys map[string]ebiten.Key
}

func newEbitenKeys() *ebitenKeys {
	return &ebitenKeys{keys: map[string]ebiten.Key{}}
}

func (k *ebitenKeys) Held(name string) bool {
	key, ok := k.lookup(name)
	return ok && ebiten.IsKeyPressed(key)
}

func (k *ebitenKeys) JustPressed(name string) bool {
	key, ok := k.lookup(name)
	return ok && inpututil.IsKeyJustPressed(key)
}

func (k *ebitenKeys) lookup(name string) (ebiten.Key, bool) {
	if name == "" {
		return 0, false
	}
	if key, ok := k.keys[name]; ok {
		return key, key >= 0
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		slog.Warn("unknown key binding", "key", name, "err", err)
		key = -1
	}
	k.keys[name] = key
	return key, key >= 0
}
