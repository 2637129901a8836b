package components

import (
	"time"

	"github.com/lixenwraith/alien-invasion/core"
)

// Star is a static background point
type Star struct {
	X      int
	Y      int
	Width  int
	Height int
	// Bright stars render with a larger glyph
	Bright bool
}

func (s *Star) Position() (float64, float64) {
	return float64(s.X), float64(s.Y)
}

func (s *Star) Bounds() core.Rect {
	return core.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// Update is a no-op: stars never move
func (s *Star) Update(time.Duration) {}
