package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

//go:generate go tool mockgen -destination=./mocks/key_source_mock.go -package=mocks . KeySource

// KeySource reports raw keyboard state by key name. Held is sampled every
// tick for movement; JustPressed is true only on the tick a key goes down.
type KeySource interface {
	Held(key string) bool
	JustPressed(key string) bool
}

// InputSystem maps each actor's control binding onto its intent. Actors
// driven by a bot are skipped.
type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s.keys == nil {
		return
	}

	ecs.ForEach2(w, component.ControlsComponent.Kind(), component.IntentComponent.Kind(), func(e ecs.Entity, controls *component.Controls, intent *component.Intent) {
		if ecs.Has(w, e, component.BotComponent.Kind()) {
			return
		}
		intent.Left = s.keys.Held(controls.Left)
		intent.Right = s.keys.Held(controls.Right)
		intent.Jump = s.keys.JustPressed(controls.Jump)
		intent.Attack = s.keys.JustPressed(controls.Attack)
	})
}
