package entity

import (
	"fmt"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/prefabs"
)

// NewArena creates the arena entity and its static walls. The walls sit
// WallMargin outside the nominal bounds, so bodies can drift past the bounds
// before the walls stop them.
func NewArena(w *ecs.World, pw *ecs.PhysicsWorld, spec prefabs.ArenaSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.ArenaTagComponent, &component.ArenaTag{}); err != nil {
		return 0, fmt.Errorf("arena: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.NameComponent, &component.Name{Value: spec.Name}); err != nil {
		return 0, fmt.Errorf("arena: add name: %w", err)
	}
	bounds := &component.ArenaBounds{HalfWidth: spec.HalfWidth, HalfHeight: spec.HalfHeight}
	if err := ecs.Add(w, e, component.ArenaBoundsComponent, bounds); err != nil {
		return 0, fmt.Errorf("arena: add bounds: %w", err)
	}

	if pw != nil {
		if shapes := pw.AddWalls(e, spec.HalfWidth+spec.WallMargin, spec.HalfHeight+spec.WallMargin); len(shapes) == 0 {
			return 0, fmt.Errorf("arena: no walls built for %vx%v", spec.HalfWidth, spec.HalfHeight)
		}
	}
	return e, nil
}
