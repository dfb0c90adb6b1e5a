package common

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		wantOK bool
	}{
		{"unit_x", 1, 0, true},
		{"diagonal", 3, 4, true},
		{"zero", 0, 0, false},
		{"nan", math.NaN(), 1, false},
		{"inf", math.Inf(1), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			nx, ny, ok := Normalize(c.x, c.y)
			if ok != c.wantOK {
				t.Fatalf("ok=%v, want %v", ok, c.wantOK)
			}
			if math.IsNaN(nx) || math.IsNaN(ny) {
				t.Fatalf("normalize produced NaN: (%v, %v)", nx, ny)
			}
			if ok && math.Abs(Length(nx, ny)-1) > 1e-9 {
				t.Fatalf("expected unit length, got %v", Length(nx, ny))
			}
			if !ok && (nx != 0 || ny != 0) {
				t.Fatalf("expected zero vector on failure, got (%v, %v)", nx, ny)
			}
		})
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	if got := SaturatingSub(100, 20); got != 80 {
		t.Fatalf("100-20: got %d", got)
	}
	if got := SaturatingSub(20, 25); got != 0 {
		t.Fatalf("20-25 should clamp to 0, got %d", got)
	}
	if got := SaturatingAdd(math.MaxUint32-1, 5); got != math.MaxUint32 {
		t.Fatalf("expected saturation, got %d", got)
	}
	if got := SaturatingAdd(20, 20); got != 40 {
		t.Fatalf("20+20: got %d", got)
	}
}
