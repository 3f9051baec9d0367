// Package match runs one two-fighter match headlessly. It owns the world,
// the platform generator and the system schedule; front ends feed it keys
// and draw from Snapshot.
package match

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/brawler/arena"
	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/ecs/entity"
	"github.com/milk9111/brawler/ecs/system"
	"github.com/milk9111/brawler/prefabs"
)

const (
	DefaultLeftPrefab   = "fighter_one.yaml"
	DefaultRightPrefab  = "fighter_two.yaml"
	DefaultLayoutPrefab = "arena.yaml"
	DefaultRestartKey   = "Space"
)

// Config describes a match. Zero fields fall back to the defaults above, a
// system clock, a time-seeded random source and the embedded scripts.
type Config struct {
	Width  float64
	Height float64

	LeftPrefab   string
	RightPrefab  string
	LayoutPrefab string

	// LeftBot and RightBot name tengo scripts that drive that side instead
	// of the keyboard.
	LeftBot  string
	RightBot string

	Keys       system.KeySource
	RestartKey string
	Clock      common.Clock
	Rand       arena.Source
	Scripts    system.ScriptLoader
	Logger     *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = common.BaseWidth
	}
	if c.Height <= 0 {
		c.Height = common.BaseHeight
	}
	if c.LeftPrefab == "" {
		c.LeftPrefab = DefaultLeftPrefab
	}
	if c.RightPrefab == "" {
		c.RightPrefab = DefaultRightPrefab
	}
	if c.LayoutPrefab == "" {
		c.LayoutPrefab = DefaultLayoutPrefab
	}
	if c.RestartKey == "" {
		c.RestartKey = DefaultRestartKey
	}
	if c.Clock == nil {
		c.Clock = common.SystemClock{}
	}
	if c.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		c.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if c.Scripts == nil {
		c.Scripts = prefabs.LoadScript
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Match is a running match. It is not safe for concurrent use; call every
// method from the goroutine that ticks it.
type Match struct {
	cfg   Config
	world *ecs.World
	clock common.Clock
	log   *slog.Logger

	generator *arena.Generator
	scheduler *ecs.Scheduler
	bots      *system.BotSystem

	arenaEnt ecs.Entity
	matchEnt ecs.Entity
	fighters [2]ecs.Entity
	prefabs  [2]string
	stats    Stats
}

// Stats counts what each side did this match, indexed like Fighters.
type Stats struct {
	Attacks [2]int
	Hits    [2]int
}

// New builds the arena, both fighters and the first platform layout and
// starts the match clock.
func New(cfg Config) (*Match, error) {
	cfg = cfg.withDefaults()

	layout, err := arena.LoadLayout(cfg.LayoutPrefab)
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	m := &Match{
		cfg:       cfg,
		world:     ecs.NewWorld(),
		clock:     cfg.Clock,
		generator: arena.NewGenerator(layout, cfg.Rand),
		bots:      system.NewBotSystem(cfg.Scripts),
		prefabs:   [2]string{cfg.LeftPrefab, cfg.RightPrefab},
	}

	bounds := component.Arena{Width: cfg.Width, Height: cfg.Height, FloorHeight: layout.FloorHeight}
	if m.arenaEnt, err = entity.NewArena(m.world, bounds); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	left, right, err := entity.NewFighters(m.world, bounds, cfg.LeftPrefab, cfg.RightPrefab)
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	m.fighters = [2]ecs.Entity{left, right}

	for i, script := range [2]string{cfg.LeftBot, cfg.RightBot} {
		if script == "" {
			continue
		}
		if err := ecs.Add(m.world, m.fighters[i], component.BotComponent.Kind(), &component.Bot{Script: script}); err != nil {
			return nil, fmt.Errorf("match: bot %s: %w", script, err)
		}
	}

	id := uuid.NewString()
	if m.matchEnt, err = entity.NewMatch(m.world, id, m.clock.Now()); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	m.log = cfg.Logger.With("match_id", id)

	if err := entity.ReplacePlatforms(m.world, m.generator.Generate(bounds.Width, bounds.Height)); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	m.scheduler = ecs.NewScheduler(
		system.NewInputSystem(cfg.Keys),
		m.bots,
		system.NewControllerSystem(m.clock),
		system.NewPhysicsSystem(),
		system.NewCombatSystem(m.clock),
		system.NewAnimationSystem(),
		system.NewMatchSystem(m.clock),
	)

	m.log.Info("match started",
		"width", bounds.Width,
		"height", bounds.Height,
		"platforms", ecs.Count(m.world, component.PlatformComponent.Kind()),
		"left", m.name(0),
		"right", m.name(1),
	)
	return m, nil
}

// Tick advances the match by one frame. While the match is over nothing
// moves; the restart key starts a new match.
func (m *Match) Tick() {
	rec := m.record()
	if rec.State == component.MatchOver {
		if m.cfg.Keys != nil && m.cfg.Keys.JustPressed(m.cfg.RestartKey) {
			m.Restart()
		}
		return
	}

	m.scheduler.Update(m.world)

	for _, evt := range m.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventAttack:
			if i, ok := m.side(evt.Source); ok {
				m.stats.Attacks[i]++
			}
		case ecs.EventHit:
			if i, ok := m.side(evt.Source); ok {
				m.stats.Hits[i]++
			}
		case ecs.EventKO:
			if actor, ok := ecs.Get(m.world, evt.Target, component.ActorComponent.Kind()); ok {
				m.log.Info("knockout", "actor", actor.Name)
			}
		}
	}
	if rec.State == component.MatchOver {
		m.log.Info("match over",
			"winner", rec.Winner,
			"elapsed", rec.EndedAt.Sub(rec.StartedAt),
			"hits", m.stats.Hits,
			"attacks", m.stats.Attacks,
		)
	}
}

// Restart puts both fighters back on their spawn points with full health,
// lays out new platforms and restarts the clock under a new match id.
func (m *Match) Restart() {
	bounds := m.bounds()
	for _, e := range m.fighters {
		entity.ResetFighter(m.world, e, bounds)
	}
	m.world.Events().Drain()
	m.stats = Stats{}
	m.regenerate()

	rec := m.record()
	id := uuid.NewString()
	*rec = component.Match{ID: id, State: component.MatchPlaying, StartedAt: m.clock.Now()}
	m.log = m.cfg.Logger.With("match_id", id)
	m.log.Info("match restarted", "platforms", ecs.Count(m.world, component.PlatformComponent.Kind()))
}

// Resize changes the arena and lays out new platforms for it. Fighters are
// clamped back inside on their next tick.
func (m *Match) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	a, _ := ecs.Get(m.world, m.arenaEnt, component.ArenaComponent.Kind())
	if a.Width == width && a.Height == height {
		return
	}
	a.Width, a.Height = width, height
	m.regenerate()
	m.log.Info("arena resized", "width", width, "height", height)
}

// ReloadPrefab re-applies an edited prefab: a fighter prefab retunes the
// live fighter and the layout prefab rebuilds the platforms. Other names
// are ignored.
func (m *Match) ReloadPrefab(name string) error {
	if name == m.cfg.LayoutPrefab {
		layout, err := arena.LoadLayout(name)
		if err != nil {
			return fmt.Errorf("match: reload %s: %w", name, err)
		}
		m.generator = arena.NewGenerator(layout, m.cfg.Rand)
		a, _ := ecs.Get(m.world, m.arenaEnt, component.ArenaComponent.Kind())
		a.FloorHeight = layout.FloorHeight
		m.regenerate()
		m.log.Info("layout reloaded", "prefab", name)
		return nil
	}

	for i, prefab := range m.prefabs {
		if prefab != name {
			continue
		}
		if err := entity.ApplyTuning(m.world, m.fighters[i], name, m.bounds()); err != nil {
			return fmt.Errorf("match: reload %s: %w", name, err)
		}
		m.log.Info("fighter reloaded", "prefab", name, "actor", m.name(i))
	}
	return nil
}

// ReloadScript drops a compiled bot script so it is recompiled next tick.
func (m *Match) ReloadScript(name string) {
	m.bots.Reload(name)
	m.log.Info("bot script reloaded", "script", name)
}

// State reports whether the match is playing or over.
func (m *Match) State() component.MatchState {
	return m.record().State
}

// Fighters returns the left and right fighter entities.
func (m *Match) Fighters() [2]ecs.Entity {
	return m.fighters
}

// World exposes the underlying world for tests and debug tooling. Front
// ends should draw from Snapshot instead.
func (m *Match) World() *ecs.World {
	return m.world
}

func (m *Match) side(e ecs.Entity) (int, bool) {
	for i, f := range m.fighters {
		if f == e {
			return i, true
		}
	}
	return 0, false
}

func (m *Match) regenerate() {
	a := m.bounds()
	// ReplacePlatforms only fails on a dead entity, which cannot happen for
	// freshly created ones.
	_ = entity.ReplacePlatforms(m.world, m.generator.Generate(a.Width, a.Height))
}

func (m *Match) bounds() component.Arena {
	a, _ := ecs.Get(m.world, m.arenaEnt, component.ArenaComponent.Kind())
	return *a
}

func (m *Match) record() *component.Match {
	rec, _ := ecs.Get(m.world, m.matchEnt, component.MatchComponent.Kind())
	return rec
}

func (m *Match) name(i int) string {
	if actor, ok := ecs.Get(m.world, m.fighters[i], component.ActorComponent.Kind()); ok {
		return actor.Name
	}
	return ""
}
