package components

import (
	"time"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/core"
)

// Entity is implemented by every simulated object on the play field
type Entity interface {
	// Position returns the float top-left position
	Position() (x, y float64)
	// Bounds returns the integer bounding box used for collision and rendering
	Bounds() core.Rect
	// Update advances the entity by dt; a nominal tick applies exactly one per-tick step
	Update(dt time.Duration)
}

// tickScale converts elapsed time into a number of nominal ticks
func tickScale(dt time.Duration) float64 {
	return float64(dt) / float64(constants.GameUpdateInterval)
}
