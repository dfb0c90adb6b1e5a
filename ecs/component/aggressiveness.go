package component

// Aggressiveness bounds the per-axis noise added to a hunter's pursuit
// direction. Sampled once in [0,1) at spawn.
type Aggressiveness struct {
	Value float64
}

var AggressivenessComponent = NewComponent[Aggressiveness]()
