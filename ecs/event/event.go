// Package event holds the typed messages that decouple the collision resolver
// from its downstream consumers.
package event

import (
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
)

// ExplosionSpawn requests a new explosion effect at (X, Y).
type ExplosionSpawn struct {
	Kind component.ExplosionKind
	X    float64
	Y    float64
}

// Attack reports a successful hit and the attacker's score after it.
type Attack struct {
	Score      uint32
	HunterName string
}

// GameEnd marks the monster's death.
type GameEnd struct{}

// Bus carries the three independent streams. Each stream has a single writer
// per tick; events are readable by every consumer scheduled after the writer
// and are dropped by Flush at the end of the tick.
type Bus struct {
	Explosions ecs.EventQueue[ExplosionSpawn]
	Attacks    ecs.EventQueue[Attack]
	GameEnds   ecs.EventQueue[GameEnd]
}

func NewBus() *Bus {
	return &Bus{}
}

// Flush discards every queued event.
func (b *Bus) Flush() {
	if b == nil {
		return
	}
	b.Explosions.Clear()
	b.Attacks.Clear()
	b.GameEnds.Clear()
}
