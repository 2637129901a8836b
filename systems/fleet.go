package systems

import (
	"time"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
)

// FleetSystem moves the fleet in lockstep and reverses it at the screen edges
type FleetSystem struct{}

func NewFleetSystem() *FleetSystem {
	return &FleetSystem{}
}

func (s *FleetSystem) Priority() int {
	return constants.PriorityFleet
}

// Update checks edges first, then advances every alien along the shared heading
func (s *FleetSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	CheckFleetEdges(ctx)
	for _, a := range ctx.World.Aliens {
		a.Update(dt)
	}
}

// CheckFleetEdges flips the heading and drops the fleet if any alien touches a side
// The first alien found at an edge triggers the change; at most one flip per call
func CheckFleetEdges(ctx *engine.GameContext) bool {
	width := ctx.Settings.ScreenWidth
	for _, a := range ctx.World.Aliens {
		if a.AtEdge(width) {
			changeFleetDirection(ctx)
			return true
		}
	}
	return false
}

func changeFleetDirection(ctx *engine.GameContext) {
	for _, a := range ctx.World.Aliens {
		a.Drop(ctx.Settings.FleetDropSpeed)
	}
	ctx.State.FleetDirection.Flip()
}

// FleetLayout returns the fleet grid that fits the screen above the ship
// Either value may be zero or negative for small screens
func FleetLayout(settings engine.Settings) (rows, columns int) {
	alienWidth, alienHeight := settings.AlienWidth, settings.AlienHeight

	availableX := settings.ScreenWidth - 2*alienWidth
	columns = availableX / (2 * alienWidth)

	availableY := settings.ScreenHeight - 3*alienHeight - settings.ShipHeight
	rows = availableY / (2 * alienHeight)
	return rows, columns
}

// BuildFleet lays out a full fleet bound to the given heading
// Degenerate layouts produce an empty fleet
func BuildFleet(settings engine.Settings, heading *components.Direction) []*components.Alien {
	rows, columns := FleetLayout(settings)
	if rows <= 0 || columns <= 0 {
		return nil
	}

	w, h := settings.AlienWidth, settings.AlienHeight
	fleet := make([]*components.Alien, 0, rows*columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := float64(w + 2*w*col)
			y := float64(h + 2*h*row)
			fleet = append(fleet, components.NewAlien(x, y, w, h, settings.AlienSpeed, heading))
		}
	}
	return fleet
}

// rebuildFleet replaces the world's aliens with a fresh fleet
func rebuildFleet(ctx *engine.GameContext) int {
	ctx.World.ClearAliens()
	ctx.World.Aliens = append(ctx.World.Aliens, BuildFleet(ctx.Settings, &ctx.State.FleetDirection)...)
	return len(ctx.World.Aliens)
}
