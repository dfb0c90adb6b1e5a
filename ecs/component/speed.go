package component

// Speed is the desired velocity written by steering and pushed into the
// physics body every tick.
type Speed struct {
	X float64
	Y float64
}

var SpeedComponent = NewComponent[Speed]()
