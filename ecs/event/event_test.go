package event

import (
	"testing"

	"github.com/milk9111/hunting/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusStreamsAreIndependent(t *testing.T) {
	bus := NewBus()
	bus.Attacks.Push(Attack{Score: 20, HunterName: "Alice"})
	bus.Explosions.Push(ExplosionSpawn{Kind: component.ExplosionShipDead, X: 1, Y: 2})

	assert.Equal(t, 1, bus.Attacks.Len())
	assert.Equal(t, 1, bus.Explosions.Len())
	assert.Equal(t, 0, bus.GameEnds.Len())
}

func TestBusEventsReadableByMultipleConsumers(t *testing.T) {
	bus := NewBus()
	bus.GameEnds.Push(GameEnd{})

	first := bus.GameEnds.Events()
	second := bus.GameEnds.Events()
	require.Len(t, first, 1)
	require.Len(t, second, 1)
}

func TestBusFlushDropsEverything(t *testing.T) {
	bus := NewBus()
	bus.Attacks.Push(Attack{Score: 1, HunterName: "Bob"})
	bus.Explosions.Push(ExplosionSpawn{})
	bus.GameEnds.Push(GameEnd{})

	bus.Flush()

	assert.Empty(t, bus.Attacks.Events())
	assert.Empty(t, bus.Explosions.Events())
	assert.Empty(t, bus.GameEnds.Events())

	var nilBus *Bus
	assert.NotPanics(t, nilBus.Flush)
}
