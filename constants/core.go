package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval (20 ticks per second)
	// All per-tick speeds in Settings are expressed relative to this interval
	GameUpdateInterval = 50 * time.Millisecond
)

// Event Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = EventQueueSize - 1

	// InputChannelSize is the buffer between the terminal poller and the game loop
	InputChannelSize = 256
)

// System Execution Priorities (lower runs first)
const (
	PriorityShip      = 10
	PriorityBullet    = 20
	PriorityFleet     = 30
	PriorityCollision = 40
)
