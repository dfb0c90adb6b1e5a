package common

const (
	// ArenaHalfWidth and ArenaHalfHeight bound the nominal play area, centered on the origin.
	ArenaHalfWidth  = 600.0
	ArenaHalfHeight = 300.0

	// VelocityGain converts a desired speed into a body velocity per tick delta.
	VelocityGain = 100.0

	// RecoveryAngle is the orientation applied to a body that left the arena.
	RecoveryAngle = 0.1

	ScreenWidth  = 1280
	ScreenHeight = 720
)
