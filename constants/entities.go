package constants

// --- Ship Entity ---
const (
	ShipWidth  = 60
	ShipHeight = 48

	// ShipChar fills the ship body, ShipNoseChar marks the top-center cell
	ShipChar     = '█'
	ShipNoseChar = '▲'
)

// --- Alien Entity ---
const (
	AlienWidth  = 60
	AlienHeight = 58

	AlienChar = '▓'
)

// --- Bullet Entity ---
const (
	BulletChar = '│'
)

// --- Star Entity ---
const (
	StarWidth  = 3
	StarHeight = 3

	StarChar    = '·'
	StarBigChar = '*'
)
