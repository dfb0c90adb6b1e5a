package component

// ArenaBounds is the nominal play rectangle, centered on the origin.
type ArenaBounds struct {
	HalfWidth  float64
	HalfHeight float64
}

// Contains reports whether (x, y) lies inside the bounds (edges inclusive).
func (b ArenaBounds) Contains(x, y float64) bool {
	return x >= -b.HalfWidth && x <= b.HalfWidth && y >= -b.HalfHeight && y <= b.HalfHeight
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
