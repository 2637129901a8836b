package components

import (
	"time"

	"github.com/lixenwraith/alien-invasion/core"
)

// Ship is the player-controlled entity pinned to the bottom of the screen
// X is kept in [0, ScreenWidth-Width]
type Ship struct {
	X      float64
	Y      int
	Width  int
	Height int
	Speed  float64

	// Movement intent, set by input handling
	MovingLeft  bool
	MovingRight bool

	ScreenWidth  int
	ScreenHeight int
}

// NewShip creates a ship centered on the bottom edge of the screen
func NewShip(width, height int, speed float64, screenWidth, screenHeight int) *Ship {
	s := &Ship{
		Width:        width,
		Height:       height,
		Speed:        speed,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
	s.Center()
	return s
}

// Center places the ship at the horizontal middle of the bottom edge
func (s *Ship) Center() {
	s.X = float64(s.ScreenWidth/2 - s.Width/2)
	s.Y = s.ScreenHeight - s.Height
}

// StopMoving clears both movement intents
func (s *Ship) StopMoving() {
	s.MovingLeft = false
	s.MovingRight = false
}

func (s *Ship) Position() (float64, float64) {
	return s.X, float64(s.Y)
}

func (s *Ship) Bounds() core.Rect {
	return core.RectAt(s.X, float64(s.Y), s.Width, s.Height)
}

// Update moves the ship by its intent
// Each direction moves only while the current edge is inside the screen, and never past it
func (s *Ship) Update(dt time.Duration) {
	step := s.Speed * tickScale(dt)
	bounds := s.Bounds()

	if s.MovingRight && bounds.Right() < s.ScreenWidth {
		limit := float64(s.ScreenWidth - s.Width)
		s.X = min(s.X+step, limit)
	}
	if s.MovingLeft && bounds.X > 0 {
		s.X = max(s.X-step, 0)
	}
}
