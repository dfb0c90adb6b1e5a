package system

import (
	"github.com/milk9111/hunting/common"
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
)

// PhysicsBindingSystem pushes each entity's desired velocity into its body and
// applies the wobble recovery to bodies outside the arena. It never moves a
// body back inside.
type PhysicsBindingSystem struct {
	gain          float64
	recoveryAngle float64
}

func NewPhysicsBindingSystem(gain, recoveryAngle float64) *PhysicsBindingSystem {
	if gain <= 0 {
		gain = common.VelocityGain
	}
	return &PhysicsBindingSystem{gain: gain, recoveryAngle: recoveryAngle}
}

// SetTuning updates the velocity gain and recovery angle.
func (s *PhysicsBindingSystem) SetTuning(gain, recoveryAngle float64) {
	if gain > 0 {
		s.gain = gain
	}
	s.recoveryAngle = recoveryAngle
}

func (s *PhysicsBindingSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	bounds := component.ArenaBounds{HalfWidth: common.ArenaHalfWidth, HalfHeight: common.ArenaHalfHeight}
	if arena, ok := w.First(component.ArenaBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, arena, component.ArenaBoundsComponent); ok {
			bounds = *b
		}
	}

	dt := w.Delta()
	ecs.ForEach2(w, component.SpeedComponent, component.PhysicsBodyComponent, func(e ecs.Entity, speed *component.Speed, pb *component.PhysicsBody) {
		body := pb.Body
		if body == nil {
			return
		}

		// a spinning body is mid-recovery; leave its velocity alone
		if body.AngularVelocity() == 0 {
			body.SetVelocity(speed.X*dt*s.gain, speed.Y*dt*s.gain)
		}

		pos := body.Position()
		if !bounds.Contains(pos.X, pos.Y) {
			body.SetAngularVelocity(0)
			body.SetAngle(s.recoveryAngle)
		}
	})
}

// PhysicsStepSystem advances the physics engine one tick and copies body
// poses into transforms for the renderer. Bodies whose entity has been
// despawned are released first.
type PhysicsStepSystem struct {
	physics *ecs.PhysicsWorld
}

func NewPhysicsStepSystem(pw *ecs.PhysicsWorld) *PhysicsStepSystem {
	return &PhysicsStepSystem{physics: pw}
}

func (s *PhysicsStepSystem) Update(w *ecs.World) {
	if s == nil || s.physics == nil || w == nil {
		return
	}

	s.physics.Prune(w)
	s.physics.Step(w.Delta())
	s.syncTransforms(w)
}

func (s *PhysicsStepSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = pb.Body.Angle()
	})
}
