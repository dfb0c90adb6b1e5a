package component

// Score only grows; see common.SaturatingAdd.
type Score struct {
	Value uint32
}

var ScoreComponent = NewComponent[Score]()
