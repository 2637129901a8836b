package systems

import (
	"math/rand"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/engine"
)

// brightStarOdds is the 1-in-N chance of a star rendering bright
const brightStarOdds = 5

// BuildStarfield tiles the screen with one jittered star per grid cell
func BuildStarfield(settings engine.Settings, rng *rand.Rand) []*components.Star {
	rows, columns := settings.StarGrid()
	if rows <= 0 || columns <= 0 {
		return nil
	}

	verticalSpace := settings.ScreenHeight / rows
	horizontalSpace := settings.ScreenWidth / columns

	stars := make([]*components.Star, 0, rows*columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := horizontalSpace/2 + jitter(rng, horizontalSpace/2) + horizontalSpace*col
			y := verticalSpace/2 + jitter(rng, verticalSpace/2) + verticalSpace*row
			stars = append(stars, &components.Star{
				X:      x,
				Y:      y,
				Width:  settings.StarWidth,
				Height: settings.StarHeight,
				Bright: rng.Intn(brightStarOdds) == 0,
			})
		}
	}
	return stars
}

// jitter returns a uniform offset in [-half, half]
func jitter(rng *rand.Rand, half int) int {
	if half <= 0 {
		return 0
	}
	return rng.Intn(2*half+1) - half
}
