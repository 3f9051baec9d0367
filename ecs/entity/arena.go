package entity

import (
	"fmt"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// NewArena creates the arena singleton.
func NewArena(w *ecs.World, arena component.Arena) (ecs.Entity, error) {
	if arena.Width <= 0 || arena.Height <= 0 {
		return 0, fmt.Errorf("arena: size must be positive, got %vx%v", arena.Width, arena.Height)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ArenaComponent.Kind(), &arena); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("arena: %w", err)
	}
	return e, nil
}

// ReplacePlatforms destroys every platform entity and creates one per
// entry in platforms, keeping their order.
func ReplacePlatforms(w *ecs.World, platforms []component.Platform) error {
	var stale []ecs.Entity
	ecs.ForEach(w, component.PlatformTagComponent.Kind(), func(e ecs.Entity, _ *component.PlatformTag) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		ecs.DestroyEntity(w, e)
	}

	for i := range platforms {
		p := platforms[i]
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &p); err != nil {
			return fmt.Errorf("platform %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{}); err != nil {
			return fmt.Errorf("platform %d: %w", i, err)
		}
	}
	return nil
}

// Platforms returns the platforms in arena order.
func Platforms(w *ecs.World) []component.Platform {
	out := make([]component.Platform, 0, ecs.Count(w, component.PlatformComponent.Kind()))
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		out = append(out, *p)
	})
	return out
}
