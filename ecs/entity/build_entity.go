package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"time"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/prefabs"
)

type buildContext struct {
	PrefabPath string
	Arena      component.Arena
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"actor":     addActor,
	"sprite":    addSprite,
	"transform": addTransform,
	"body":      addBody,
	"fighter":   addFighter,
	"controls":  addControls,
	"health":    addHealth,
	"attack":    addAttack,
	"hitbox":    addHitbox,
	"hurtbox":   addHurtbox,
	"animation": addAnimation,
	"bot":       addBot,
}

// transform reads the spawn point set by actor, and hurtbox defaults to
// the body it follows.
var componentBuildOrder = []string{
	"actor",
	"sprite",
	"transform",
	"body",
	"fighter",
	"controls",
	"health",
	"attack",
	"hitbox",
	"hurtbox",
	"animation",
	"bot",
}

// BuildEntity creates an entity from a prefab. Spawn points are resolved
// against arena.
func BuildEntity(w *ecs.World, prefabPath string, arena component.Arena) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	if err := applyComponents(w, e, spec, &buildContext{PrefabPath: prefabPath, Arena: arena}, nil); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

// ApplyTuning re-reads a prefab onto a live entity. Position and facing are
// left alone; builders keep the runtime state of components that already
// exist.
func ApplyTuning(w *ecs.World, e ecs.Entity, prefabPath string, arena component.Arena) error {
	if !ecs.IsAlive(w, e) {
		return fmt.Errorf("apply tuning: %w", component.ErrEntityNotAlive)
	}
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return fmt.Errorf("apply tuning: load %q: %w", prefabPath, err)
	}
	return applyComponents(w, e, spec, &buildContext{PrefabPath: prefabPath, Arena: arena}, map[string]bool{"transform": true})
}

func applyComponents(w *ecs.World, e ecs.Entity, spec prefabs.EntityBuildSpec, ctx *buildContext, skip map[string]bool) error {
	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	apply := func(name string) error {
		raw := remaining[name]
		delete(remaining, name)
		if skip[name] {
			return nil
		}
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", ctx.PrefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", ctx.PrefabPath, name, err)
		}
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := apply(name); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := apply(name); err != nil {
			return err
		}
	}

	return ensureHurtbox(w, e)
}

// ensureHurtbox covers the whole body when the prefab gives no hurtbox.
func ensureHurtbox(w *ecs.World, e ecs.Entity) error {
	if ecs.Has(w, e, component.HurtboxComponent.Kind()) {
		return nil
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return nil
	}
	return ecs.Add(w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{Width: body.Width, Height: body.Height})
}

type actorSpec = prefabs.ActorComponentSpec

func addActor(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[actorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode actor spec: %w", err)
	}
	side, err := parseSide(spec.Side)
	if err != nil {
		return err
	}

	actor := component.Actor{
		Name: spec.Name,
		Side: side,
		Spawn: component.Spawn{
			XRatio:  spec.Spawn.XRatio,
			YOffset: spec.Spawn.YOffset,
		},
	}
	if actor.Name == "" {
		actor.Name = strings.TrimSuffix(ctx.PrefabPath, ".yaml")
	}
	if existing, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		actor.Opponent = existing.Opponent
		actor.Spawn.FacingLeft = existing.Spawn.FacingLeft
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &actor); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ActorTagComponent.Kind(), &component.ActorTag{}); err != nil {
		return err
	}
	if !ecs.Has(w, e, component.IntentComponent.Kind()) {
		if err := ecs.Add(w, e, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
			return err
		}
	}
	if !ecs.Has(w, e, component.JumpComponent.Kind()) {
		return ecs.Add(w, e, component.JumpComponent.Kind(), &component.Jump{})
	}
	return nil
}

func parseSide(raw string) (component.Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "left":
		return component.SideLeft, nil
	case "right":
		return component.SideRight, nil
	default:
		return 0, fmt.Errorf("unknown side %q", raw)
	}
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	tint := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if spec.Color != nil && spec.Color.Color != nil {
		tint = color.NRGBAModel.Convert(spec.Color.Color).(color.NRGBA)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: tint})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := component.Transform{FacingLeft: spec.FacingLeft}
	if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		actor.Spawn.FacingLeft = spec.FacingLeft
		t.X, t.Y = actor.Spawn.Point(ctx.Arena)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &t)
}

type bodySpec = prefabs.BodyComponentSpec

func addBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode body spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("body size must be positive, got %vx%v", spec.Width, spec.Height)
	}
	body := component.Body{Width: spec.Width, Height: spec.Height}
	if existing, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		body.VY = existing.VY
	}
	return ecs.Add(w, e, component.BodyComponent.Kind(), &body)
}

type fighterSpec = prefabs.FighterComponentSpec

func addFighter(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[fighterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode fighter spec: %w", err)
	}
	f := component.DefaultFighter()
	if spec.Speed != 0 {
		f.Speed = spec.Speed
	}
	if spec.Gravity != 0 {
		f.Gravity = spec.Gravity
	}
	if spec.JumpForce != 0 {
		f.JumpForce = spec.JumpForce
	}
	if spec.DoubleJumpScale != 0 {
		f.DoubleJumpScale = spec.DoubleJumpScale
	}
	if spec.MaxFallSpeed != 0 {
		f.MaxFallSpeed = spec.MaxFallSpeed
	}
	if spec.LandingMargin != 0 {
		f.LandingMargin = spec.LandingMargin
	}
	return ecs.Add(w, e, component.FighterComponent.Kind(), &f)
}

type controlsSpec = prefabs.ControlsComponentSpec

func addControls(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[controlsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controls spec: %w", err)
	}
	return ecs.Add(w, e, component.ControlsComponent.Kind(), &component.Controls{
		Left:   spec.Left,
		Right:  spec.Right,
		Jump:   spec.Jump,
		Attack: spec.Attack,
	})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		spec.Max = 100
	}
	health := component.Health{Current: spec.Max, Max: spec.Max}
	if existing, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		health.Current = min(existing.Current, spec.Max)
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &health)
}

type attackSpec = prefabs.AttackComponentSpec

func addAttack(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[attackSpec](raw)
	if err != nil {
		return fmt.Errorf("decode attack spec: %w", err)
	}
	attack := component.Attack{Duration: time.Duration(spec.DurationMS) * time.Millisecond}
	if existing, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok {
		attack.Active = existing.Active
		attack.Until = existing.Until
	}
	return ecs.Add(w, e, component.AttackComponent.Kind(), &attack)
}

type hitboxSpec = prefabs.HitboxComponentSpec

func addHitbox(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hitboxSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hitbox spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("hitbox size must be positive, got %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.HitboxComponent.Kind(), &component.Hitbox{
		Width:             spec.Width,
		Height:            spec.Height,
		OffsetY:           spec.OffsetY,
		Damage:            spec.Damage,
		InvulnerableTicks: spec.InvulnerableTicks,
	})
}

type hurtboxSpec = prefabs.HurtboxComponentSpec

func addHurtbox(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hurtboxSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hurtbox spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil
	}
	return ecs.Add(w, e, component.HurtboxComponent.Kind(), &component.Hurtbox{
		Width:   spec.Width,
		Height:  spec.Height,
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}

	anim := component.Animation{
		Defs:    make(map[component.AnimState]component.AnimationDef, len(spec.Defs)),
		Current: component.AnimRun,
	}
	for name, def := range spec.Defs {
		state := component.AnimState(name)
		switch state {
		case component.AnimRun, component.AnimJump, component.AnimAttack:
		default:
			return fmt.Errorf("unknown animation %q", name)
		}
		if def.Frames <= 0 {
			return fmt.Errorf("animation %q needs at least one frame", name)
		}
		anim.Defs[state] = component.AnimationDef{Frames: def.Frames, FrameDelay: max(def.FrameDelay, 1)}
	}
	if existing, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Current = existing.Current
		anim.Frame = existing.Frame
		anim.FrameTimer = existing.FrameTimer
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &anim)
}

type botSpec = prefabs.BotComponentSpec

func addBot(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[botSpec](raw)
	if err != nil {
		return fmt.Errorf("decode bot spec: %w", err)
	}
	if spec.Script == "" {
		return nil
	}
	return ecs.Add(w, e, component.BotComponent.Kind(), &component.Bot{Script: spec.Script})
}
