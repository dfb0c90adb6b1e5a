package component

// HitFlash blinks an entity white for Frames ticks after it takes a hit.
type HitFlash struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

var HitFlashComponent = NewComponent[HitFlash]()
