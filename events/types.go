package events

import (
	"fmt"
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventFireRequest signals player intent to fire
	// Trigger: InputHandler (space key down)
	// Consumer: BulletSystem | Payload: nil
	EventFireRequest EventType = iota

	// EventPlayRequest signals player intent to start a game
	// Trigger: InputHandler (mouse click, Enter or p)
	// Consumer: LifecycleSystem | Payload: *PlayRequestPayload
	EventPlayRequest

	// EventShipHit signals the ship was struck or an alien reached the bottom
	// Trigger: CollisionSystem, at most once per tick
	// Consumer: LifecycleSystem | Payload: *ShipHitPayload
	EventShipHit

	// EventWaveCleared signals the last alien of the fleet was destroyed
	// Trigger: CollisionSystem
	// Consumer: LifecycleSystem | Payload: *WaveClearedPayload
	EventWaveCleared

	// EventGameStarted signals a new game began
	// Trigger: LifecycleSystem | Payload: nil
	EventGameStarted

	// EventGameOver signals the last ship was lost
	// Trigger: LifecycleSystem | Payload: *GameOverPayload
	EventGameOver
)

var eventTypeNames = map[EventType]string{
	EventFireRequest: "FireRequest",
	EventPlayRequest: "PlayRequest",
	EventShipHit:     "ShipHit",
	EventWaveCleared: "WaveCleared",
	EventGameStarted: "GameStarted",
	EventGameOver:    "GameOver",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
