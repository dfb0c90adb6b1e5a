package system

import (
	"fmt"
	"log"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/ecs/entity"
	"github.com/milk9111/hunting/ecs/event"
	"github.com/milk9111/hunting/prefabs"
)

// ExplosionParams is one row of the explosion lookup table.
type ExplosionParams struct {
	Visual     string
	StartScale float64
	EndScale   float64
	Duration   float64
}

type ExplosionTable struct {
	VisualRadius float64
	Params       map[component.ExplosionKind]ExplosionParams
}

const defaultExplosionRadius = 512

func DefaultExplosionTable() ExplosionTable {
	return ExplosionTable{
		VisualRadius: defaultExplosionRadius,
		Params: map[component.ExplosionKind]ExplosionParams{
			component.ExplosionShipDead:        {Visual: "explosion01", StartScale: 0.1 / 15.0, EndScale: 3.0 / 15.0, Duration: 2.5},
			component.ExplosionShipContact:     {Visual: "flash00", StartScale: 0.05 / 15.0, EndScale: 0.1 / 15.0, Duration: 0.5},
			component.ExplosionLaserOnAsteroid: {Visual: "flash00", StartScale: 0.1 / 15.0, EndScale: 0.15 / 15.0, Duration: 0.5},
		},
	}
}

// ExplosionTableFromSpec overlays a prefab table on the defaults. Kinds the
// prefab omits keep their default row.
func ExplosionTableFromSpec(spec prefabs.ExplosionTableSpec) (ExplosionTable, error) {
	table := DefaultExplosionTable()
	if spec.VisualRadius > 0 {
		table.VisualRadius = spec.VisualRadius
	}
	for _, row := range spec.Explosions {
		kind, err := component.ParseExplosionKind(row.Kind)
		if err != nil {
			return DefaultExplosionTable(), fmt.Errorf("explosion table: %w", err)
		}
		if row.Duration <= 0 {
			return DefaultExplosionTable(), fmt.Errorf("explosion table: %s: duration must be positive", row.Kind)
		}
		params := ExplosionParams{
			Visual:     row.Visual,
			StartScale: row.StartScale,
			EndScale:   row.EndScale,
			Duration:   row.Duration,
		}
		if params.Visual == "" {
			params.Visual = table.Params[kind].Visual
		}
		table.Params[kind] = params
	}
	return table, nil
}

// ExplosionSpawnSystem creates one effect entity per ExplosionSpawn event.
type ExplosionSpawnSystem struct {
	bus   *event.Bus
	table ExplosionTable
}

func NewExplosionSpawnSystem(bus *event.Bus, table ExplosionTable) *ExplosionSpawnSystem {
	return &ExplosionSpawnSystem{bus: bus, table: table}
}

// SetTable swaps the lookup table; effects already running keep their
// parameters.
func (s *ExplosionSpawnSystem) SetTable(table ExplosionTable) {
	s.table = table
}

func (s *ExplosionSpawnSystem) Update(w *ecs.World) {
	if s == nil || s.bus == nil || w == nil {
		return
	}

	for _, evt := range s.bus.Explosions.Events() {
		params, ok := s.table.Params[evt.Kind]
		if !ok {
			log.Printf("explosion: no table entry for %s", evt.Kind)
			continue
		}
		fx := component.Explosion{
			Kind:       evt.Kind,
			Duration:   params.Duration,
			StartScale: params.StartScale,
			EndScale:   params.EndScale,
		}
		if _, err := entity.NewExplosion(w, fx, params.Visual, s.table.VisualRadius, evt.X, evt.Y); err != nil {
			log.Printf("explosion: spawn %s: %v", evt.Kind, err)
		}
	}
}

// ExplosionSystem advances every effect by the tick delta. An effect grows
// while elapsed < duration and is despawned once it reaches it.
type ExplosionSystem struct{}

func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

func (s *ExplosionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	ecs.ForEach(w, component.ExplosionComponent, func(e ecs.Entity, fx *component.Explosion) {
		fx.Elapsed += dt
		if fx.Expired() {
			ecs.DestroyEntity(w, e)
			return
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			t.Scale = fx.Scale()
		}
	})
}
