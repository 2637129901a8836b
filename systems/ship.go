package systems

import (
	"time"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
)

// ShipSystem applies the player's movement intent
type ShipSystem struct{}

func NewShipSystem() *ShipSystem {
	return &ShipSystem{}
}

func (s *ShipSystem) Priority() int {
	return constants.PriorityShip
}

func (s *ShipSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	ctx.World.Ship.Update(dt)
}
