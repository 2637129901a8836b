package engine

import (
	"time"

	"github.com/lixenwraith/alien-invasion/components"
)

// GamePhase is the controller state
type GamePhase int

const (
	// PhaseInactive is pre-game or game-over: only quit and play are processed
	PhaseInactive GamePhase = iota
	// PhaseActive runs the full simulation tick
	PhaseActive
	// PhasePaused follows a ship-hit: simulation suspended until PauseUntil, quit still accepted
	PhasePaused
)

func (p GamePhase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	default:
		return "inactive"
	}
}

// GameState holds the mutable game statistics and phase
type GameState struct {
	ShipsLeft int
	Phase     GamePhase
	// PauseUntil is meaningful only in PhasePaused
	PauseUntil time.Time

	// FleetDirection is the heading shared by every alien
	FleetDirection components.Direction

	Wave            int
	AliensDestroyed int
	FrameNumber     int64

	shipLimit        int
	initialDirection components.Direction
}

// NewGameState creates state for a game that has not started yet
func NewGameState(shipLimit int, direction components.Direction) *GameState {
	gs := &GameState{
		shipLimit:        shipLimit,
		initialDirection: direction,
		Phase:            PhaseInactive,
	}
	gs.ResetStats()
	return gs
}

// ResetStats restores the statistics a new game starts with
func (gs *GameState) ResetStats() {
	gs.ShipsLeft = gs.shipLimit
	gs.FleetDirection = gs.initialDirection
	gs.Wave = 1
	gs.AliensDestroyed = 0
}

// GameActive reports whether a game is in progress, paused or not
func (gs *GameState) GameActive() bool {
	return gs.Phase != PhaseInactive
}

// Simulating reports whether a tick should advance entities
func (gs *GameState) Simulating() bool {
	return gs.Phase == PhaseActive
}

// Activate enters PhaseActive
func (gs *GameState) Activate() {
	gs.Phase = PhaseActive
	gs.PauseUntil = time.Time{}
}

// Deactivate enters PhaseInactive (game over)
func (gs *GameState) Deactivate() {
	gs.Phase = PhaseInactive
	gs.PauseUntil = time.Time{}
}

// Pause suspends simulation until the given time
func (gs *GameState) Pause(until time.Time) {
	gs.Phase = PhasePaused
	gs.PauseUntil = until
}

// ResumeIfDue leaves PhasePaused once now reaches PauseUntil
// Returns true on the transition
func (gs *GameState) ResumeIfDue(now time.Time) bool {
	if gs.Phase != PhasePaused || now.Before(gs.PauseUntil) {
		return false
	}
	gs.Activate()
	return true
}

// LoseShip decrements the remaining ships without going below zero
// Returns the remaining count
func (gs *GameState) LoseShip() int {
	if gs.ShipsLeft > 0 {
		gs.ShipsLeft--
	}
	return gs.ShipsLeft
}
