package component

type GameOverOverlay struct {
	Text string
}

var GameOverOverlayComponent = NewComponent[GameOverOverlay]()
