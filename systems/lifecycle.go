package systems

import (
	"log"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/events"
)

// LifecycleSystem owns game start, ship loss, game over and wave turnover
type LifecycleSystem struct{}

func NewLifecycleSystem() *LifecycleSystem {
	return &LifecycleSystem{}
}

func (s *LifecycleSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPlayRequest,
		events.EventShipHit,
		events.EventWaveCleared,
	}
}

func (s *LifecycleSystem) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	switch event.Type {
	case events.EventPlayRequest:
		payload, _ := event.Payload.(*events.PlayRequestPayload)
		s.handlePlayRequest(ctx, payload)
	case events.EventShipHit:
		cause := events.HitCollision
		if payload, ok := event.Payload.(*events.ShipHitPayload); ok {
			cause = payload.Cause
		}
		HandleShipHit(ctx, cause)
	case events.EventWaveCleared:
		HandleWaveCleared(ctx)
	}
}

func (s *LifecycleSystem) handlePlayRequest(ctx *engine.GameContext, payload *events.PlayRequestPayload) {
	if ctx.State.GameActive() || payload == nil {
		return
	}
	if !payload.Keyboard && !ctx.PlayButton().Contains(payload.X, payload.Y) {
		return
	}
	StartNewGame(ctx)
}

// InitWorld builds the starfield and the first fleet shown behind the play button
func InitWorld(ctx *engine.GameContext) {
	ctx.World.Stars = BuildStarfield(ctx.Settings, ctx.Rand)
	n := rebuildFleet(ctx)
	rows, columns := FleetLayout(ctx.Settings)
	log.Printf("[LIFECYCLE] world ready: %d stars, fleet %dx%d (%d aliens)", len(ctx.World.Stars), rows, columns, n)
}

// StartNewGame resets stats, clears the field and starts an active game
func StartNewGame(ctx *engine.GameContext) {
	ctx.State.ResetStats()
	ctx.World.ClearBullets()
	rebuildFleet(ctx)
	ctx.World.Ship.Center()
	ctx.World.Ship.StopMoving()
	ctx.State.Activate()

	log.Printf("[LIFECYCLE] new game, ships=%d aliens=%d", ctx.State.ShipsLeft, len(ctx.World.Aliens))
	ctx.PushEvent(events.EventGameStarted, nil)
}

// HandleShipHit spends a ship; the last ship ends the game without rebuilding the fleet
// Otherwise the fleet is rebuilt, the ship recentered and the simulation paused
func HandleShipHit(ctx *engine.GameContext, cause events.HitCause) {
	if !ctx.State.GameActive() {
		return
	}

	left := ctx.State.LoseShip()
	ctx.World.ClearAliens()
	ctx.World.ClearBullets()

	if left == 0 {
		ctx.World.Ship.StopMoving()
		ctx.State.Deactivate()
		log.Printf("[LIFECYCLE] ship hit (%s), game over at wave %d", cause, ctx.State.Wave)
		ctx.PushEvent(events.EventGameOver, &events.GameOverPayload{Wave: ctx.State.Wave})
		return
	}

	rebuildFleet(ctx)
	ctx.World.Ship.Center()
	ctx.State.Pause(ctx.Now.Add(constants.ShipHitPause))
	log.Printf("[LIFECYCLE] ship hit (%s), ships left=%d", cause, left)
}

// HandleWaveCleared clears remaining bullets and builds the next fleet
func HandleWaveCleared(ctx *engine.GameContext) {
	if !ctx.State.GameActive() || len(ctx.World.Aliens) > 0 {
		return
	}
	ctx.World.ClearBullets()
	n := rebuildFleet(ctx)
	ctx.State.Wave++
	log.Printf("[LIFECYCLE] wave cleared, wave %d with %d aliens", ctx.State.Wave, n)
}
