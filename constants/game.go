package constants

import "time"

// Lifecycle Timing
const (
	// ShipHitPause is how long the simulation is suspended after the ship is hit
	ShipHitPause = 500 * time.Millisecond

	// KeyHoldTimeout is how long a movement key stays held without a repeat
	// Terminals report no key release, so release is inferred from repeat silence.
	// Must exceed the usual initial auto-repeat delay (~250-500ms)
	KeyHoldTimeout = 550 * time.Millisecond
)

// Default Settings
const (
	DefaultScreenWidth  = 1500
	DefaultScreenHeight = 800
	DefaultBgColor      = "#0a0019"

	DefaultShipSpeed = 12.0
	DefaultShipLimit = 3

	DefaultBulletSpeed   = 24.0
	DefaultBulletWidth   = 3
	DefaultBulletHeight  = 15
	DefaultBulletColor   = "#ffffff"
	DefaultBulletAllowed = 3

	DefaultStarDensity = 1.0

	DefaultAlienSpeed     = 3.0
	DefaultFleetDropSpeed = 20

	// DefaultFleetDirection of 1 represents right, -1 is left
	DefaultFleetDirection = 1
)

// Starfield Layout
const (
	// StarGridFactor is the base number of star rows/columns per logical unit
	StarGridFactor = 0.01

	// StarDensityStep is how much each density point widens the grid
	StarDensityStep = 0.1
)
