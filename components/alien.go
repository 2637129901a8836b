package components

import (
	"time"

	"github.com/lixenwraith/alien-invasion/core"
)

// Direction is the shared horizontal heading of the fleet
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

// Flip reverses the heading
func (d *Direction) Flip() {
	*d = -*d
}

// Valid reports whether the direction is one of the two headings
func (d Direction) Valid() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Alien is a fleet member
// Aliens carry no heading of their own: all of them read the fleet's shared Direction
type Alien struct {
	X      float64
	Y      float64
	Width  int
	Height int
	Speed  float64

	heading *Direction
}

// NewAlien creates an alien bound to the fleet heading
func NewAlien(x, y float64, width, height int, speed float64, heading *Direction) *Alien {
	return &Alien{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Speed:   speed,
		heading: heading,
	}
}

func (a *Alien) Position() (float64, float64) {
	return a.X, a.Y
}

func (a *Alien) Bounds() core.Rect {
	return core.RectAt(a.X, a.Y, a.Width, a.Height)
}

// Update moves the alien along the fleet heading
func (a *Alien) Update(dt time.Duration) {
	if a.heading == nil {
		return
	}
	a.X += a.Speed * float64(*a.heading) * tickScale(dt)
}

// AtEdge reports whether the alien touches or crosses a side of the screen
func (a *Alien) AtEdge(screenWidth int) bool {
	bounds := a.Bounds()
	return bounds.Right() >= screenWidth || bounds.X <= 0
}

// Drop moves the alien down by amount
func (a *Alien) Drop(amount int) {
	a.Y += float64(amount)
}
