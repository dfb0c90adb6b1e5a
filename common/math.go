package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Length returns the euclidean length of (x, y).
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize returns the unit vector of (x, y). ok is false when the vector is
// zero-length or not finite, in which case (0, 0) is returned.
func Normalize(x, y float64) (nx, ny float64, ok bool) {
	l := math.Hypot(x, y)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return 0, 0, false
	}
	return x / l, y / l, true
}

// SaturatingSub returns a-b, or 0 when b > a.
func SaturatingSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

// SaturatingAdd returns a+b, capped at math.MaxUint32.
func SaturatingAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}
