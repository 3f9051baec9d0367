package system

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// ScriptLoader resolves a bot script name to source.
type ScriptLoader func(name string) ([]byte, error)

// botDispatchScript runs after the user script, which must define
// decide(self, opponent) returning a map of intent flags.
const botDispatchScript = `
__intent := decide(__self, __opponent)
`

type botRuntime struct {
	compiled *tengo.Compiled
	err      error
}

// BotSystem drives actors tagged with component.Bot from tengo scripts.
// A script that fails to compile or run is disabled until Reload, and the
// actor stands still.
type BotSystem struct {
	load     ScriptLoader
	runtimes map[string]*botRuntime
}

func NewBotSystem(load ScriptLoader) *BotSystem {
	return &BotSystem{load: load, runtimes: map[string]*botRuntime{}}
}

// Reload drops the compiled script so the next tick recompiles it.
func (s *BotSystem) Reload(name string) {
	delete(s.runtimes, name)
}

func (s *BotSystem) Update(w *ecs.World) {
	if w == nil || s.load == nil {
		return
	}

	ecs.ForEach2(w, component.BotComponent.Kind(), component.IntentComponent.Kind(), func(e ecs.Entity, bot *component.Bot, intent *component.Intent) {
		*intent = component.Intent{}

		rt := s.runtime(bot.Script)
		if rt.err != nil {
			return
		}

		actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
		if !ok {
			return
		}
		self := botView(w, e)
		opponent := botView(w, ecs.Entity(actor.Opponent))

		next, err := rt.decide(self, opponent)
		if err != nil {
			rt.err = err
			slog.Error("bot script disabled", "script", bot.Script, "actor", actor.Name, "err", err)
			return
		}
		*intent = next
	})
}

func (s *BotSystem) runtime(name string) *botRuntime {
	if rt, ok := s.runtimes[name]; ok {
		return rt
	}
	rt := &botRuntime{}
	rt.compiled, rt.err = compileBot(s.load, name)
	if rt.err != nil {
		slog.Error("bot script failed to compile", "script", name, "err", rt.err)
	}
	s.runtimes[name] = rt
	return rt
}

func compileBot(load ScriptLoader, name string) (*tengo.Compiled, error) {
	src, err := load(name)
	if err != nil {
		return nil, fmt.Errorf("bot: load %s: %w", name, err)
	}

	script := tengo.NewScript(append(append([]byte{}, src...), botDispatchScript...))
	empty := map[string]any{}
	_ = script.Add("__self", empty)
	_ = script.Add("__opponent", empty)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("bot: compile %s: %w", name, err)
	}
	return compiled, nil
}

func (rt *botRuntime) decide(self, opponent *tengo.ImmutableMap) (component.Intent, error) {
	if err := rt.compiled.Set("__self", self); err != nil {
		return component.Intent{}, err
	}
	if err := rt.compiled.Set("__opponent", opponent); err != nil {
		return component.Intent{}, err
	}
	if err := rt.compiled.Run(); err != nil {
		return component.Intent{}, err
	}

	out := rt.compiled.Get("__intent").Map()
	flag := func(key string) bool {
		v, _ := out[key].(bool)
		return v
	}
	return component.Intent{
		Left:   flag("left"),
		Right:  flag("right"),
		Jump:   flag("jump"),
		Attack: flag("attack"),
	}, nil
}

// botView exposes the read-only actor fields a script may steer by.
func botView(w *ecs.World, e ecs.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		values["x"] = &tengo.Float{Value: t.X}
		values["y"] = &tengo.Float{Value: t.Y}
		values["facing_left"] = tengoBool(t.FacingLeft)
	}
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		values["vy"] = &tengo.Float{Value: b.VY}
		values["width"] = &tengo.Float{Value: b.Width}
		values["height"] = &tengo.Float{Value: b.Height}
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		values["health"] = &tengo.Int{Value: int64(h.Current)}
	}
	if j, ok := ecs.Get(w, e, component.JumpComponent.Kind()); ok {
		values["grounded"] = tengoBool(!j.Airborne())
		values["can_double_jump"] = tengoBool(j.State == component.JumpAirborne)
	}
	if a, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok {
		values["attacking"] = tengoBool(a.Active)
	}
	values["invulnerable"] = tengoBool(ecs.Has(w, e, component.InvulnerableComponent.Kind()))

	return &tengo.ImmutableMap{Value: values}
}

func tengoBool(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
