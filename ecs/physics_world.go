package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	CollisionTypeMonster cp.CollisionType = iota + 1
	CollisionTypeHunter
	CollisionTypeWall
)

// ContactKind distinguishes contact start from separation.
type ContactKind int

const (
	ContactStarted ContactKind = iota
	ContactStopped
)

func (k ContactKind) String() string {
	if k == ContactStopped {
		return "stopped"
	}
	return "started"
}

// ContactEvent is a raw contact notification from the physics engine. A and B
// keep the order of the collision handler that produced them.
type ContactEvent struct {
	Kind ContactKind
	A    *cp.Shape
	B    *cp.Shape
}

// BodyDef describes a dynamic circular body bound to an entity.
type BodyDef struct {
	X, Y          float64
	Radius        float64
	Mass          float64
	Friction      float64
	Elasticity    float64
	CollisionType cp.CollisionType
}

// PhysicsWorld owns the Chipmunk space, the body and collider registries and
// the contact queue filled by collision handlers during Step.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	// bodies is the body registry; the owning entity lives in Body.UserData.
	bodies map[*cp.Body]struct{}
	// colliders maps every registered shape to its owning body.
	colliders map[*cp.Shape]*cp.Body

	contacts EventQueue[ContactEvent]
}

// NewPhysicsWorld creates a zero-gravity physics world.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:     space,
		bodies:    make(map[*cp.Body]struct{}),
		colliders: make(map[*cp.Shape]*cp.Body),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Contacts returns the contact queue.
func (pw *PhysicsWorld) Contacts() *EventQueue[ContactEvent] {
	if pw == nil {
		return nil
	}
	return &pw.contacts
}

// Bind creates a dynamic body for e and registers it. The entity handle is
// stored as the body's opaque user data.
func (pw *PhysicsWorld) Bind(e Entity, def BodyDef) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil || !e.Valid() {
		return nil, nil
	}
	radius := def.Radius
	if radius <= 0 {
		radius = 16
	}
	mass := def.Mass
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: def.X, Y: def.Y})
	body.SetAngle(0)
	body.SetAngularVelocity(0)
	body.UserData = e

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Elasticity)
	shape.SetCollisionType(def.CollisionType)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	pw.bodies[body] = struct{}{}
	pw.colliders[shape] = body
	return body, shape
}

// AddWalls builds four static segments enclosing the rectangle
// [-halfW, halfW] x [-halfH, halfH] and binds them to e through the space's
// static body.
func (pw *PhysicsWorld) AddWalls(e Entity, halfW, halfH float64) []*cp.Shape {
	if pw == nil || pw.space == nil || halfW <= 0 || halfH <= 0 {
		return nil
	}
	static := pw.space.StaticBody
	static.UserData = e
	pw.bodies[static] = struct{}{}

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: -halfW, Y: -halfH}, b: cp.Vector{X: halfW, Y: -halfH}},
		{a: cp.Vector{X: -halfW, Y: halfH}, b: cp.Vector{X: halfW, Y: halfH}},
		{a: cp.Vector{X: -halfW, Y: -halfH}, b: cp.Vector{X: -halfW, Y: halfH}},
		{a: cp.Vector{X: halfW, Y: -halfH}, b: cp.Vector{X: halfW, Y: halfH}},
	}

	shapes := make([]*cp.Shape, 0, len(segments))
	for _, seg := range segments {
		shape := cp.NewSegment(static, seg.a, seg.b, 2)
		shape.SetFriction(0)
		shape.SetElasticity(1)
		shape.SetCollisionType(CollisionTypeWall)
		pw.space.AddShape(shape)
		pw.colliders[shape] = static
		shapes = append(shapes, shape)
	}
	return shapes
}

// Unbind removes a body and all of its shapes from the space and the
// registries. Unbinding an unknown body is a no-op.
func (pw *PhysicsWorld) Unbind(body *cp.Body) {
	if pw == nil || body == nil {
		return
	}
	if _, ok := pw.bodies[body]; !ok {
		return
	}
	for shape, owner := range pw.colliders {
		if owner != body {
			continue
		}
		if pw.space != nil {
			pw.space.RemoveShape(shape)
		}
		delete(pw.colliders, shape)
	}
	if pw.space != nil && body != pw.space.StaticBody {
		pw.space.RemoveBody(body)
	}
	delete(pw.bodies, body)
	body.UserData = nil
}

// ColliderBody resolves a shape through the collider registry.
func (pw *PhysicsWorld) ColliderBody(shape *cp.Shape) (*cp.Body, bool) {
	if pw == nil || shape == nil {
		return nil, false
	}
	body, ok := pw.colliders[shape]
	return body, ok && body != nil
}

// BodyEntity resolves a registered body to the entity handle stored on it.
// The handle may be stale; callers check it against the World.
func (pw *PhysicsWorld) BodyEntity(body *cp.Body) (Entity, bool) {
	if pw == nil || body == nil {
		return 0, false
	}
	if _, ok := pw.bodies[body]; !ok {
		return 0, false
	}
	e, ok := body.UserData.(Entity)
	if !ok || !e.Valid() {
		return 0, false
	}
	return e, true
}

// Resolve maps a collider to its live owning entity. Any registry miss or a
// despawned owner yields ok=false.
func (pw *PhysicsWorld) Resolve(w *World, shape *cp.Shape) (Entity, *cp.Body, bool) {
	body, ok := pw.ColliderBody(shape)
	if !ok {
		return 0, nil, false
	}
	e, ok := pw.BodyEntity(body)
	if !ok || !w.IsAlive(e) {
		return 0, nil, false
	}
	return e, body, true
}

// Prune unbinds every dynamic body whose owning entity is no longer alive.
func (pw *PhysicsWorld) Prune(w *World) int {
	if pw == nil {
		return 0
	}
	removed := 0
	for body := range pw.bodies {
		e, ok := body.UserData.(Entity)
		if ok && w.IsAlive(e) {
			continue
		}
		pw.Unbind(body)
		removed++
	}
	return removed
}

// BodyCount returns the number of registered bodies.
func (pw *PhysicsWorld) BodyCount() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 || math.IsNaN(dt) {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	// Monster first so the resolver sees it as the victim candidate.
	pairs := [][2]cp.CollisionType{
		{CollisionTypeMonster, CollisionTypeHunter},
		{CollisionTypeHunter, CollisionTypeHunter},
		{CollisionTypeHunter, CollisionTypeWall},
		{CollisionTypeMonster, CollisionTypeWall},
	}
	for _, pair := range pairs {
		handler := pw.space.NewCollisionHandler(pair[0], pair[1])
		handler.UserData = pw
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*PhysicsWorld)
			if !ok || world == nil {
				return true
			}
			a, b := arb.Shapes()
			world.contacts.Push(ContactEvent{Kind: ContactStarted, A: a, B: b})
			return true
		}
		handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			world, ok := userData.(*PhysicsWorld)
			if !ok || world == nil {
				return
			}
			a, b := arb.Shapes()
			world.contacts.Push(ContactEvent{Kind: ContactStopped, A: a, B: b})
		}
	}

	pw.handlersReady = true
}
