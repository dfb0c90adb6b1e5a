package component

import (
	"fmt"

	"github.com/milk9111/hunting/common"
)

type ExplosionKind int

const (
	ExplosionShipDead ExplosionKind = iota
	ExplosionShipContact
	ExplosionLaserOnAsteroid
)

func (k ExplosionKind) String() string {
	switch k {
	case ExplosionShipDead:
		return "ship_dead"
	case ExplosionShipContact:
		return "ship_contact"
	case ExplosionLaserOnAsteroid:
		return "laser_on_asteroid"
	default:
		return fmt.Sprintf("explosion(%d)", int(k))
	}
}

// ParseExplosionKind maps the prefab spelling back to a kind.
func ParseExplosionKind(s string) (ExplosionKind, error) {
	switch s {
	case "ship_dead":
		return ExplosionShipDead, nil
	case "ship_contact":
		return ExplosionShipContact, nil
	case "laser_on_asteroid":
		return ExplosionLaserOnAsteroid, nil
	}
	return 0, fmt.Errorf("unknown explosion kind %q", s)
}

// Explosion is a visual-only effect instance. It grows from StartScale to
// EndScale over Duration seconds and is despawned once Elapsed reaches it.
type Explosion struct {
	Kind       ExplosionKind
	Elapsed    float64
	Duration   float64
	StartScale float64
	EndScale   float64
}

// Scale returns the interpolated scale for the current elapsed time.
func (e Explosion) Scale() float64 {
	if e.Duration <= 0 {
		return e.EndScale
	}
	return common.Lerp(e.StartScale, e.EndScale, e.Elapsed/e.Duration)
}

// Expired reports whether the effect has run its full duration.
func (e Explosion) Expired() bool {
	return e.Elapsed >= e.Duration
}

var ExplosionComponent = NewComponent[Explosion]()
