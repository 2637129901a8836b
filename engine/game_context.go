package engine

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/core"
	"github.com/lixenwraith/alien-invasion/events"
)

// GameContext holds all game state shared by the controller, systems and input handling
type GameContext struct {
	Settings Settings
	World    *World
	State    *GameState

	// Event pipeline, dispatched by the controller
	Events *events.EventQueue
	Router *events.Router[*GameContext]

	TimeProvider TimeProvider
	Rand         *rand.Rand

	// Now is the time of the tick being processed
	Now time.Time
}

// NewGameContext validates settings and creates the world with the player ship
func NewGameContext(settings Settings, timeProvider TimeProvider, rng *rand.Rand) (*GameContext, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if timeProvider == nil {
		return nil, errors.New("nil time provider")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(timeProvider.Now().UnixNano()))
	}

	ship := components.NewShip(
		settings.ShipWidth,
		settings.ShipHeight,
		settings.ShipSpeed,
		settings.ScreenWidth,
		settings.ScreenHeight,
	)

	queue := events.NewEventQueue()
	ctx := &GameContext{
		Settings:     settings,
		World:        NewWorld(ship),
		State:        NewGameState(settings.ShipLimit, settings.FleetDirection),
		Events:       queue,
		Router:       events.NewRouter[*GameContext](queue),
		TimeProvider: timeProvider,
		Rand:         rng,
		Now:          timeProvider.Now(),
	}
	return ctx, nil
}

// PushEvent queues an event stamped with the current frame and tick time
func (g *GameContext) PushEvent(eventType events.EventType, payload any) {
	g.Events.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Frame:     g.State.FrameNumber,
		Timestamp: g.Now,
	})
}

// PlayButton returns the play button rect in logical units
func (g *GameContext) PlayButton() core.Rect {
	return core.Centered(
		g.Settings.ScreenWidth,
		g.Settings.ScreenHeight,
		constants.PlayButtonWidth,
		constants.PlayButtonHeight,
	)
}
