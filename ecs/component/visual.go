package component

import "image/color"

// Visual selects how the renderer draws an entity. Key indexes the fixed
// visual table; Radius is in world units before Transform.Scale.
type Visual struct {
	Key    string
	Color  color.RGBA
	Radius float64
	Layer  int
}

var VisualComponent = NewComponent[Visual]()
