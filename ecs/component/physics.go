package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores the Chipmunk2D objects bound to an entity. The body's
// UserData carries the owning entity handle back.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
	Mass   float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
