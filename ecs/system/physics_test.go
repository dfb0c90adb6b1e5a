package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hunting/ecs"
	"github.com/milk9111/hunting/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDt = 1.0 / 60.0

func TestPhysicsBindingScalesVelocity(t *testing.T) {
	f := newArenaFixture(t)
	m := f.monster(t, 0, 0)
	speed, _ := ecs.Get(f.w, m, component.SpeedComponent)
	speed.X, speed.Y = 10, -5

	f.tick(testDt, NewPhysicsBindingSystem(100, 0.1))

	v := f.body(t, m).Body.Velocity()
	assert.InDelta(t, 10*testDt*100, v.X, 1e-9)
	assert.InDelta(t, -5*testDt*100, v.Y, 1e-9)
}

func TestPhysicsBindingSkipsSpinningBody(t *testing.T) {
	f := newArenaFixture(t)
	m := f.monster(t, 0, 0)
	speed, _ := ecs.Get(f.w, m, component.SpeedComponent)
	speed.X = 10
	body := f.body(t, m).Body
	body.SetAngularVelocity(2)
	body.SetVelocity(1, 1)

	f.tick(testDt, NewPhysicsBindingSystem(100, 0.1))

	assert.Equal(t, cp.Vector{X: 1, Y: 1}, body.Velocity())
}

func TestPhysicsBindingRecoversOutOfBounds(t *testing.T) {
	f := newArenaFixture(t)
	m := f.monster(t, 0, 0)
	speed, _ := ecs.Get(f.w, m, component.SpeedComponent)
	speed.X = -10
	body := f.body(t, m).Body
	body.SetPosition(cp.Vector{X: 700, Y: 0})
	body.SetAngularVelocity(3)
	body.SetAngle(2)

	binding := NewPhysicsBindingSystem(100, 0.1)
	f.tick(testDt, binding)

	assert.Zero(t, body.AngularVelocity())
	assert.InDelta(t, 0.1, body.Angle(), 1e-12)
	assert.Equal(t, 700.0, body.Position().X, "recovery never moves the body")

	// repeated ticks keep steering the body rather than locking it
	for i := 0; i < 5; i++ {
		f.tick(testDt, binding)
		assert.Zero(t, body.AngularVelocity())
		assert.InDelta(t, -10*testDt*100, body.Velocity().X, 1e-9)
	}
}

func TestPhysicsStepSyncsAndPrunes(t *testing.T) {
	f := newArenaFixture(t)
	m := f.monster(t, 0, 0)
	h := f.hunter(t, "Alice", 20, 0, 300, 0)
	f.body(t, m).Body.SetVelocity(60, 0)

	step := NewPhysicsStepSystem(f.pw)
	f.tick(testDt, step)

	tr, ok := ecs.Get(f.w, m, component.TransformComponent)
	require.True(t, ok)
	assert.InDelta(t, 1, tr.X, 1e-6)

	hunterBody := f.body(t, h).Body
	before := f.pw.BodyCount()
	ecs.DestroyEntity(f.w, h)
	f.tick(testDt, step)

	assert.Equal(t, before-1, f.pw.BodyCount())
	_, ok = f.pw.BodyEntity(hunterBody)
	assert.False(t, ok)
}

func TestPhysicsStepReportsMonsterFirst(t *testing.T) {
	f := newArenaFixture(t)
	m := f.monster(t, 0, 0)
	h := f.hunter(t, "Alice", 20, 0, 10, 0)

	f.tick(testDt, NewPhysicsStepSystem(f.pw))

	contacts := f.pw.Contacts().Events()
	require.NotEmpty(t, contacts)
	assert.Equal(t, ecs.ContactStarted, contacts[0].Kind)
	assert.Same(t, f.body(t, m).Shape, contacts[0].A)
	assert.Same(t, f.body(t, h).Shape, contacts[0].B)
}

func TestDebugShapeColorByRole(t *testing.T) {
	f := newArenaFixture(t)
	m := f.monster(t, 0, 0)
	h := f.hunter(t, "Alice", 20, 0, 100, 0)

	monsterShape := f.body(t, m).Shape
	monsterColor := debugShapeColor(f.w, monsterShape)
	hunterColor := debugShapeColor(f.w, f.body(t, h).Shape)
	assert.NotEqual(t, monsterColor, hunterColor)

	ecs.DestroyEntity(f.w, m)
	assert.Equal(t, cp.FColor{R: 1, G: 1, B: 1, A: 0.5}, debugShapeColor(f.w, monsterShape))
}
