package entity

import (
	"fmt"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/prefabs"
)

const VisualHunter = "hunter"

// NewHunter spawns a hunter at (x, y). aggressiveness is clamped to [0,1) and
// fixed for the hunter's lifetime, as is its damage.
func NewHunter(w *ecs.World, pw *ecs.PhysicsWorld, spec prefabs.HuntersSpec, entry prefabs.HunterEntrySpec, aggressiveness, x, y float64) (ecs.Entity, error) {
	if entry.Name == "" {
		return 0, fmt.Errorf("hunter: empty name")
	}
	if pw == nil {
		return 0, fmt.Errorf("hunter %s: physics world is nil", entry.Name)
	}
	clr, err := prefabs.ParseColor(spec.Color)
	if err != nil {
		return 0, fmt.Errorf("hunter %s: %w", entry.Name, err)
	}
	if aggressiveness < 0 {
		aggressiveness = 0
	}
	if aggressiveness >= 1 {
		aggressiveness = 0.999
	}
	damage := entry.Damage
	if damage == 0 {
		damage = spec.Damage
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.HunterTagComponent, &component.HunterTag{}); err != nil {
		return 0, fmt.Errorf("hunter %s: add tag: %w", entry.Name, err)
	}
	if err := ecs.Add(w, e, component.NameComponent, &component.Name{Value: entry.Name}); err != nil {
		return 0, fmt.Errorf("hunter %s: add name: %w", entry.Name, err)
	}
	if err := ecs.Add(w, e, component.SpeedComponent, &component.Speed{}); err != nil {
		return 0, fmt.Errorf("hunter %s: add speed: %w", entry.Name, err)
	}
	if err := ecs.Add(w, e, component.SteeringComponent, &component.Steering{MaxSpeed: spec.PursuitSpeed}); err != nil {
		return 0, fmt.Errorf("hunter %s: add steering: %w", entry.Name, err)
	}
	if err := ecs.Add(w, e, component.AggressivenessComponent, &component.Aggressiveness{Value: aggressiveness}); err != nil {
		return 0, fmt.Errorf("hunter %s: add aggressiveness: %w", entry.Name, err)
	}
	if err := ecs.Add(w, e, component.DamageComponent, &component.Damage{Value: damage}); err != nil {
		return 0, fmt.Errorf("hunter %s: add damage: %w", entry.Name, err)
	}
	if err := ecs.Add(w, e, component.ScoreComponent, &component.Score{}); err != nil {
		return 0, fmt.Errorf("hunter %s: add score: %w", entry.Name, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, Scale: 1}); err != nil {
		return 0, fmt.Errorf("hunter %s: add transform: %w", entry.Name, err)
	}
	visual := &component.Visual{Key: VisualHunter, Color: clr, Radius: spec.Radius, Layer: 1}
	if err := ecs.Add(w, e, component.VisualComponent, visual); err != nil {
		return 0, fmt.Errorf("hunter %s: add visual: %w", entry.Name, err)
	}

	body, shape := pw.Bind(e, ecs.BodyDef{
		X:             x,
		Y:             y,
		Radius:        spec.Radius,
		Mass:          spec.Mass,
		CollisionType: ecs.CollisionTypeHunter,
	})
	if body == nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("hunter %s: bind body failed", entry.Name)
	}
	pb := &component.PhysicsBody{Body: body, Shape: shape, Radius: spec.Radius, Mass: spec.Mass}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, pb); err != nil {
		pw.Unbind(body)
		return 0, fmt.Errorf("hunter %s: add physics body: %w", entry.Name, err)
	}

	return e, nil
}
