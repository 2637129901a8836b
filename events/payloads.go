package events

// HitCause identifies what triggered a ship-hit
type HitCause int

const (
	// HitCollision: an alien overlapped the ship
	HitCollision HitCause = iota
	// HitBottom: an alien reached the bottom of the screen
	HitBottom
)

func (c HitCause) String() string {
	if c == HitBottom {
		return "bottom"
	}
	return "collision"
}

// PlayRequestPayload carries the play trigger
// Keyboard requests bypass the button hit test
type PlayRequestPayload struct {
	X, Y     int // Logical click position
	Keyboard bool
}

// ShipHitPayload carries the hit cause
type ShipHitPayload struct {
	Cause HitCause
}

// WaveClearedPayload carries the number of aliens destroyed in the clearing tick
type WaveClearedPayload struct {
	Destroyed int
}

// GameOverPayload carries the final wave reached
type GameOverPayload struct {
	Wave int
}
