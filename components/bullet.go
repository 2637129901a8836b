package components

import (
	"time"

	"github.com/lixenwraith/alien-invasion/core"
)

// Bullet is a player projectile travelling straight up at a fixed x
type Bullet struct {
	X      float64
	Y      float64
	Width  int
	Height int
	Speed  float64
}

// NewBullet spawns a bullet at the top-center of the ship
func NewBullet(ship *Ship, width, height int, speed float64) *Bullet {
	shipBounds := ship.Bounds()
	return &Bullet{
		X:      float64(shipBounds.CenterX() - width/2),
		Y:      float64(shipBounds.Y),
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

func (b *Bullet) Position() (float64, float64) {
	return b.X, b.Y
}

func (b *Bullet) Bounds() core.Rect {
	return core.RectAt(b.X, b.Y, b.Width, b.Height)
}

// Update moves the bullet up
func (b *Bullet) Update(dt time.Duration) {
	b.Y -= b.Speed * tickScale(dt)
}

// OffScreen reports whether the bullet has fully left the top of the screen
func (b *Bullet) OffScreen() bool {
	return b.Bounds().Bottom() <= 0
}
