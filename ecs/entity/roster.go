package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/prefabs"
)

// Roster is the set of entities spawned at startup.
type Roster struct {
	Arena   ecs.Entity
	Monster ecs.Entity
	Hunters []ecs.Entity
	Labels  []ecs.Entity
}

const (
	labelX       = 16.0
	labelY       = 24.0
	labelSpacing = 18.0
)

// SpawnRoster creates the arena, the monster and every hunter at random
// positions inside the arena, plus one score label per hunter.
func SpawnRoster(w *ecs.World, pw *ecs.PhysicsWorld, rng *rand.Rand, arena prefabs.ArenaSpec, monster prefabs.MonsterSpec, hunters prefabs.HuntersSpec) (*Roster, error) {
	if rng == nil {
		return nil, fmt.Errorf("roster: nil random source")
	}
	r := &Roster{}

	var err error
	if r.Arena, err = NewArena(w, pw, arena); err != nil {
		return nil, err
	}

	x, y := randomPoint(rng, arena, monster.Radius)
	if r.Monster, err = NewMonster(w, pw, monster, x, y); err != nil {
		return nil, err
	}

	for i, entry := range hunters.Hunters {
		x, y := randomPoint(rng, arena, hunters.Radius)
		h, err := NewHunter(w, pw, hunters, entry, rng.Float64(), x, y)
		if err != nil {
			return nil, err
		}
		r.Hunters = append(r.Hunters, h)

		label, err := NewScoreLabel(w, entry.Name, labelX, labelY+float64(i)*labelSpacing)
		if err != nil {
			return nil, err
		}
		r.Labels = append(r.Labels, label)
	}
	return r, nil
}

func randomPoint(rng *rand.Rand, arena prefabs.ArenaSpec, radius float64) (float64, float64) {
	halfW := max(arena.HalfWidth-radius, 0)
	halfH := max(arena.HalfHeight-radius, 0)
	return (rng.Float64()*2 - 1) * halfW, (rng.Float64()*2 - 1) * halfH
}
