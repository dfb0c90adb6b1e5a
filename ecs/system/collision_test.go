package system

import (
	"testing"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionSingleHit(t *testing.T) {
	f := newArenaFixture(t)
	monster := f.monster(t, 0, 0)
	alice := f.hunter(t, "Alice", 20, 0, 100, 0)

	f.hit(t, monster, alice)
	f.tick(1.0/60.0, NewCollisionSystem(f.pw, f.bus))

	health, ok := ecs.Get(f.w, monster, component.HealthComponent)
	require.True(t, ok)
	assert.Equal(t, uint32(80), health.Current)

	score, ok := ecs.Get(f.w, alice, component.ScoreComponent)
	require.True(t, ok)
	assert.Equal(t, uint32(20), score.Value)

	attacks := f.bus.Attacks.Events()
	require.Len(t, attacks, 1)
	assert.Equal(t, "Alice", attacks[0].HunterName)
	assert.Equal(t, uint32(20), attacks[0].Score)

	explosions := f.bus.Explosions.Events()
	require.Len(t, explosions, 1)
	assert.Equal(t, component.ExplosionShipContact, explosions[0].Kind)
	assert.InDelta(t, 50, explosions[0].X, 1e-9)
	assert.InDelta(t, 0, explosions[0].Y, 1e-9)

	assert.Zero(t, f.bus.GameEnds.Len())
	assert.Zero(t, f.pw.Contacts().Len(), "contacts are drained")

	flash, ok := ecs.Get(f.w, monster, component.HitFlashComponent)
	require.True(t, ok)
	assert.True(t, flash.On)

	blink := NewHitFlashSystem()
	for i := 0; i < 12; i++ {
		f.tick(1.0/60.0, blink)
	}
	assert.False(t, ecs.Has(f.w, monster, component.HitFlashComponent))
}

func TestCollisionKillSequence(t *testing.T) {
	f := newArenaFixture(t)
	monster := f.monster(t, 0, 0)
	alice := f.hunter(t, "Alice", 20, 0, 100, 0)
	bob := f.hunter(t, "Bob", 25, 0, -100, 0)
	monsterShape := f.body(t, monster).Shape

	for i := 0; i < 4; i++ {
		f.hit(t, monster, alice)
	}
	f.hit(t, monster, bob)
	// reported after the killing blow in the same drain
	f.hit(t, monster, alice)

	f.tick(1.0/60.0, NewCollisionSystem(f.pw, f.bus))

	assert.False(t, f.w.IsAlive(monster))
	_, _, ok := f.pw.Resolve(f.w, monsterShape)
	assert.False(t, ok, "monster collider must no longer resolve")

	assert.Len(t, f.bus.Attacks.Events(), 5)
	assert.Equal(t, 1, f.bus.GameEnds.Len())
	assert.Equal(t, 1, countExplosions(f.bus.Explosions.Events(), component.ExplosionShipDead))
	assert.Equal(t, 5, countExplosions(f.bus.Explosions.Events(), component.ExplosionShipContact))

	aliceScore, _ := ecs.Get(f.w, alice, component.ScoreComponent)
	bobScore, _ := ecs.Get(f.w, bob, component.ScoreComponent)
	assert.Equal(t, uint32(80), aliceScore.Value)
	assert.Equal(t, uint32(25), bobScore.Value)

	overlay, ok := f.w.First(component.GameOverOverlayComponent.Kind())
	require.True(t, ok)
	text, _ := ecs.Get(f.w, overlay, component.GameOverOverlayComponent)
	assert.Equal(t, entity.GameOverText, text.Text)

	// a later contact on the dead collider is ignored
	f.bus.Flush()
	f.pw.Contacts().Push(ecs.ContactEvent{Kind: ecs.ContactStarted, A: monsterShape, B: f.body(t, alice).Shape})
	f.tick(1.0/60.0, NewCollisionSystem(f.pw, f.bus))
	assert.Zero(t, f.bus.Attacks.Len())
	assert.Zero(t, f.bus.GameEnds.Len())
}

func TestCollisionIgnoresNonCombatPairs(t *testing.T) {
	f := newArenaFixture(t)
	monster := f.monster(t, 0, 0)
	alice := f.hunter(t, "Alice", 20, 0, 100, 0)
	bob := f.hunter(t, "Bob", 20, 0, -100, 0)

	f.hit(t, alice, bob)
	f.hit(t, alice, monster)
	f.pw.Contacts().Push(ecs.ContactEvent{
		Kind: ecs.ContactStopped,
		A:    f.body(t, monster).Shape,
		B:    f.body(t, alice).Shape,
	})
	f.pw.Contacts().Push(ecs.ContactEvent{Kind: ecs.ContactStarted, A: nil, B: f.body(t, alice).Shape})

	f.tick(1.0/60.0, NewCollisionSystem(f.pw, f.bus))

	health, _ := ecs.Get(f.w, monster, component.HealthComponent)
	assert.Equal(t, uint32(100), health.Current)
	assert.Zero(t, f.bus.Attacks.Len())
	assert.Zero(t, f.bus.Explosions.Len())
}

func TestCollisionHealthStaysInRange(t *testing.T) {
	f := newArenaFixture(t)
	monster := f.monster(t, 0, 0)
	brute := f.hunter(t, "Brute", 250, 0, 100, 0)

	f.hit(t, monster, brute)
	health, _ := ecs.Get(f.w, monster, component.HealthComponent)
	f.tick(1.0/60.0, NewCollisionSystem(f.pw, f.bus))

	assert.Equal(t, uint32(0), health.Current)
	assert.False(t, f.w.IsAlive(monster))
	assert.Equal(t, 1, f.bus.GameEnds.Len())
}
