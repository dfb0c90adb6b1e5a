package entity

import (
	"fmt"

	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/milk9111/hunting/prefabs"
)

const VisualMonster = "monster"

// NewMonster spawns the monster at (x, y). Only one may be alive at a time.
func NewMonster(w *ecs.World, pw *ecs.PhysicsWorld, spec prefabs.MonsterSpec, x, y float64) (ecs.Entity, error) {
	if existing, ok := w.First(component.MonsterTagComponent.Kind()); ok {
		return 0, fmt.Errorf("monster: %s already alive", existing)
	}
	if pw == nil {
		return 0, fmt.Errorf("monster: physics world is nil")
	}
	clr, err := prefabs.ParseColor(spec.Color)
	if err != nil {
		return 0, fmt.Errorf("monster: %w", err)
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.MonsterTagComponent, &component.MonsterTag{}); err != nil {
		return 0, fmt.Errorf("monster: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.NameComponent, &component.Name{Value: spec.Name}); err != nil {
		return 0, fmt.Errorf("monster: add name: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent, &component.Health{Current: spec.Health, Initial: spec.Health}); err != nil {
		return 0, fmt.Errorf("monster: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.SpeedComponent, &component.Speed{}); err != nil {
		return 0, fmt.Errorf("monster: add speed: %w", err)
	}
	if err := ecs.Add(w, e, component.SteeringComponent, &component.Steering{MaxSpeed: spec.WanderSpeed}); err != nil {
		return 0, fmt.Errorf("monster: add steering: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, Scale: 1}); err != nil {
		return 0, fmt.Errorf("monster: add transform: %w", err)
	}
	visual := &component.Visual{Key: VisualMonster, Color: clr, Radius: spec.Radius, Layer: 1}
	if err := ecs.Add(w, e, component.VisualComponent, visual); err != nil {
		return 0, fmt.Errorf("monster: add visual: %w", err)
	}

	body, shape := pw.Bind(e, ecs.BodyDef{
		X:             x,
		Y:             y,
		Radius:        spec.Radius,
		Mass:          spec.Mass,
		CollisionType: ecs.CollisionTypeMonster,
	})
	if body == nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("monster: bind body failed")
	}
	pb := &component.PhysicsBody{Body: body, Shape: shape, Radius: spec.Radius, Mass: spec.Mass}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, pb); err != nil {
		pw.Unbind(body)
		return 0, fmt.Errorf("monster: add physics body: %w", err)
	}

	return e, nil
}
