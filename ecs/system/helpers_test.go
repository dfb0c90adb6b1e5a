package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/ecs/entity"
	"github.com/milk9111/hunting/ecs/event"
	"github.com/milk9111/hunting/prefabs"
	"github.com/stretchr/testify/require"
)

type arenaFixture struct {
	w   *ecs.World
	pw  *ecs.PhysicsWorld
	bus *event.Bus
	rng *rand.Rand
}

func newArenaFixture(t *testing.T) *arenaFixture {
	t.Helper()
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)
	return &arenaFixture{
		w:   w,
		pw:  pw,
		bus: event.NewBus(),
		rng: rand.New(rand.NewPCG(1, 2)),
	}
}

func (f *arenaFixture) monster(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewMonster(f.w, f.pw, prefabs.DefaultMonsterSpec(), x, y)
	require.NoError(t, err)
	return e
}

func (f *arenaFixture) hunter(t *testing.T, name string, damage uint32, aggressiveness, x, y float64) ecs.Entity {
	t.Helper()
	entry := prefabs.HunterEntrySpec{Name: name, Damage: damage}
	e, err := entity.NewHunter(f.w, f.pw, prefabs.DefaultHuntersSpec(), entry, aggressiveness, x, y)
	require.NoError(t, err)
	return e
}

func (f *arenaFixture) body(t *testing.T, e ecs.Entity) *component.PhysicsBody {
	t.Helper()
	pb, ok := ecs.Get(f.w, e, component.PhysicsBodyComponent)
	require.True(t, ok, "entity %s has no physics body", e)
	return pb
}

// hit queues a contact as the engine would report it for the pair.
func (f *arenaFixture) hit(t *testing.T, victim, attacker ecs.Entity) {
	t.Helper()
	f.pw.Contacts().Push(ecs.ContactEvent{
		Kind: ecs.ContactStarted,
		A:    f.body(t, victim).Shape,
		B:    f.body(t, attacker).Shape,
	})
}

func (f *arenaFixture) tick(dt float64, systems ...ecs.System) {
	f.w.SetDelta(dt)
	ecs.NewScheduler(systems...).Update(f.w)
}

func countExplosions(events []event.ExplosionSpawn, kind component.ExplosionKind) int {
	n := 0
	for _, evt := range events {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}
