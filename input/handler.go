package input

import (
	"log"
	"time"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/events"
)

// Handler applies input events to the game context
// Movement and fire act only while the simulation runs; play only while no game is in progress
// Quit is honored in every phase
type Handler struct {
	tracker *KeyTracker
}

// NewHandler creates a handler with the default key hold timeout
func NewHandler() *Handler {
	return &Handler{tracker: NewKeyTracker(constants.KeyHoldTimeout)}
}

// Handle processes one event, returning false when the game should quit
func (h *Handler) Handle(ctx *engine.GameContext, ev Event, now time.Time) bool {
	switch ev.Kind {
	case EventQuit:
		return false

	case EventKeyDown:
		return h.keyDown(ctx, ev.Key, now)

	case EventKeyUp:
		h.keyUp(ctx, ev.Key)

	case EventMouseDown:
		if !ctx.State.GameActive() {
			ctx.PushEvent(events.EventPlayRequest, &events.PlayRequestPayload{X: ev.X, Y: ev.Y})
		}
	}
	return true
}

// ReleaseStale synthesizes key-up for movement keys whose repeats stopped
func (h *Handler) ReleaseStale(ctx *engine.GameContext, now time.Time) {
	for _, key := range h.tracker.Expire(now) {
		h.keyUp(ctx, key)
	}
}

func (h *Handler) keyDown(ctx *engine.GameContext, key Key, now time.Time) bool {
	ship := ctx.World.Ship

	switch key {
	case KeyQuit:
		log.Printf("[INPUT] quit requested")
		return false

	case KeyLeft, KeyRight:
		if !ctx.State.Simulating() {
			return true
		}
		// One direction at a time: pressing one releases the other
		if key == KeyLeft {
			h.keyUp(ctx, KeyRight)
			ship.MovingLeft = true
		} else {
			h.keyUp(ctx, KeyLeft)
			ship.MovingRight = true
		}
		h.tracker.Press(key, now)

	case KeyStop:
		h.keyUp(ctx, KeyLeft)
		h.keyUp(ctx, KeyRight)

	case KeyFire:
		if ctx.State.Simulating() {
			ctx.PushEvent(events.EventFireRequest, nil)
		}

	case KeyPlay:
		if !ctx.State.GameActive() {
			ctx.PushEvent(events.EventPlayRequest, &events.PlayRequestPayload{Keyboard: true})
		}
	}
	return true
}

func (h *Handler) keyUp(ctx *engine.GameContext, key Key) {
	ship := ctx.World.Ship
	switch key {
	case KeyLeft:
		ship.MovingLeft = false
		h.tracker.Release(KeyLeft)
	case KeyRight:
		ship.MovingRight = false
		h.tracker.Release(KeyRight)
	}
}
