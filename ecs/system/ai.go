package system

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/milk9111/hunting/common"
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
)

// maxSteerStepsPerTick bounds catch-up after a long stall.
const maxSteerStepsPerTick = 4

// AISystem writes the desired velocity of the monster and every hunter on a
// fixed cadence, independent of the render rate.
type AISystem struct {
	rng      *rand.Rand
	interval float64
	acc      float64
	script   *WanderScript

	hunters *ecs.Query
}

func NewAISystem(rng *rand.Rand, interval float64) *AISystem {
	return &AISystem{
		rng:      rng,
		interval: interval,
		hunters: ecs.NewQuery(
			component.HunterTagComponent.Kind(),
			component.SpeedComponent.Kind(),
			component.SteeringComponent.Kind(),
			component.AggressivenessComponent.Kind(),
		),
	}
}

// SetInterval changes the steering cadence in seconds. Non-positive values
// steer every tick.
func (s *AISystem) SetInterval(interval float64) {
	s.interval = interval
}

// SetWanderScript replaces the built-in monster random walk with a script.
// A nil runtime restores the built-in policy.
func (s *AISystem) SetWanderScript(rt *WanderScript) {
	s.script = rt
}

func (s *AISystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.rng == nil {
		return
	}

	if s.interval <= 0 {
		s.steer(w)
		return
	}

	s.acc += w.Delta()
	steps := 0
	for s.acc >= s.interval {
		s.acc -= s.interval
		if steps < maxSteerStepsPerTick {
			s.steer(w)
			steps++
		}
	}
}

func (s *AISystem) steer(w *ecs.World) {
	monsterX, monsterY, monsterFound := 0.0, 0.0, false
	if monster, ok := w.First(component.MonsterTagComponent.Kind()); ok {
		s.wander(w, monster)
		monsterX, monsterY, monsterFound = entityPosition(w, monster)
	}

	for _, e := range s.hunters.Entities(w) {
		speed, _ := ecs.Get(w, e, component.SpeedComponent)
		steering, _ := ecs.Get(w, e, component.SteeringComponent)
		aggr, _ := ecs.Get(w, e, component.AggressivenessComponent)

		hx, hy, ok := entityPosition(w, e)
		if !monsterFound || !ok {
			*speed = component.Speed{}
			continue
		}
		vx, vy := pursue(s.rng, monsterX-hx, monsterY-hy, aggr.Value, steering.MaxSpeed)
		speed.X, speed.Y = vx, vy
	}
}

func (s *AISystem) wander(w *ecs.World, monster ecs.Entity) {
	speed, ok := ecs.Get(w, monster, component.SpeedComponent)
	if !ok {
		return
	}
	magnitude := 0.0
	if steering, ok := ecs.Get(w, monster, component.SteeringComponent); ok {
		magnitude = steering.MaxSpeed
	}

	angle := s.rng.Float64() * 2 * math.Pi
	if s.script != nil {
		vx, vy, err := s.script.velocity(angle, magnitude)
		if err == nil {
			speed.X, speed.Y = vx, vy
			return
		}
		log.Printf("ai: wander script %s failed, using built-in random walk: %v", s.script.scriptPath, err)
		s.script = nil
	}
	speed.X = magnitude * math.Cos(angle)
	speed.Y = magnitude * math.Sin(angle)
}

// pursue steers along (dx, dy) with per-axis noise in [-aggr, aggr]. It
// returns zero whenever either normalization is degenerate.
func pursue(rng *rand.Rand, dx, dy, aggr, magnitude float64) (float64, float64) {
	nx, ny, ok := common.Normalize(dx, dy)
	if !ok {
		return 0, 0
	}
	nx += (rng.Float64()*2 - 1) * aggr
	ny += (rng.Float64()*2 - 1) * aggr
	px, py, ok := common.Normalize(nx, ny)
	if !ok {
		return 0, 0
	}
	return px * magnitude, py * magnitude
}

// entityPosition prefers the live physics body over the last synced transform.
func entityPosition(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && pb.Body != nil {
		pos := pb.Body.Position()
		return pos.X, pos.Y, true
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		return t.X, t.Y, true
	}
	return 0, 0, false
}
