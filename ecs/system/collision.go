package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hunting/common"
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/ecs/entity"
	"github.com/milk9111/hunting/ecs/event"
)

// CollisionSystem turns raw physics contacts into combat: damage, score,
// death and the events that follow. Contacts are handled one at a time in
// the order the engine reported them.
type CollisionSystem struct {
	physics *ecs.PhysicsWorld
	bus     *event.Bus

	victims   *ecs.Query
	attackers *ecs.Query
}

func NewCollisionSystem(pw *ecs.PhysicsWorld, bus *event.Bus) *CollisionSystem {
	return &CollisionSystem{
		physics: pw,
		bus:     bus,
		victims: ecs.NewQuery(component.NameComponent.Kind(), component.HealthComponent.Kind()).
			Without(component.HunterTagComponent.Kind()),
		attackers: ecs.NewQuery(component.NameComponent.Kind(), component.DamageComponent.Kind()).
			Without(component.MonsterTagComponent.Kind()),
	}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || s.physics == nil || s.bus == nil || w == nil {
		return
	}

	for _, contact := range s.physics.Contacts().Drain() {
		if contact.Kind != ecs.ContactStarted {
			continue
		}
		s.resolve(w, contact)
	}
}

func (s *CollisionSystem) resolve(w *ecs.World, contact ecs.ContactEvent) {
	// stale colliders from an earlier despawn in this drain miss here
	victim, victimBody, ok := s.physics.Resolve(w, contact.A)
	if !ok {
		return
	}
	attacker, attackerBody, ok := s.physics.Resolve(w, contact.B)
	if !ok {
		return
	}
	if !s.victims.Matches(w, victim) || !s.attackers.Matches(w, attacker) {
		return
	}

	health, _ := ecs.Get(w, victim, component.HealthComponent)
	damage, _ := ecs.Get(w, attacker, component.DamageComponent)
	attackerName, _ := ecs.Get(w, attacker, component.NameComponent)

	health.Current = common.SaturatingSub(health.Current, damage.Value)

	var score uint32
	if sc, ok := ecs.Get(w, attacker, component.ScoreComponent); ok {
		sc.Value = common.SaturatingAdd(sc.Value, damage.Value)
		score = sc.Value
	}
	s.bus.Attacks.Push(event.Attack{Score: score, HunterName: attackerName.Value})

	cx, cy := midpoint(victimBody, attackerBody)
	s.bus.Explosions.Push(event.ExplosionSpawn{Kind: component.ExplosionShipContact, X: cx, Y: cy})

	startHitFlash(w, victim)

	if health.Current == 0 {
		s.kill(w, victim, victimBody, attackerName.Value)
	}
}

func (s *CollisionSystem) kill(w *ecs.World, victim ecs.Entity, body *cp.Body, killer string) {
	victimName := ""
	if n, ok := ecs.Get(w, victim, component.NameComponent); ok {
		victimName = n.Value
	}
	// capture before the body goes away with the entity
	pos := body.Position()

	if !ecs.DestroyEntity(w, victim) {
		return
	}
	s.physics.Unbind(body)

	if _, err := entity.NewGameOverOverlay(w); err != nil {
		log.Printf("collision: spawn game over overlay: %v", err)
	}
	s.bus.GameEnds.Push(event.GameEnd{})
	s.bus.Explosions.Push(event.ExplosionSpawn{Kind: component.ExplosionShipDead, X: pos.X, Y: pos.Y})

	log.Printf("collision: %s defeated by %s at (%.1f, %.1f)", victimName, killer, pos.X, pos.Y)
}

func midpoint(a, b *cp.Body) (float64, float64) {
	pa, pb := a.Position(), b.Position()
	return (pa.X + pb.X) / 2, (pa.Y + pb.Y) / 2
}
