package component

// ScoreLabel is the on-screen score for one hunter, matched to Attack events
// by exact name.
type ScoreLabel struct {
	HunterName string
	Score      uint32
	Text       string
	X          float64
	Y          float64
}

var ScoreLabelComponent = NewComponent[ScoreLabel]()
