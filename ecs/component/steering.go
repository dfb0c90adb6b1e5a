package component

// Steering holds the fixed magnitude applied to the steering direction:
// wander speed for the monster, pursuit speed for hunters.
type Steering struct {
	MaxSpeed float64
}

var SteeringComponent = NewComponent[Steering]()
