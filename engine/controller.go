package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/events"
)

// System is an interface that all per-tick systems implement
type System interface {
	Update(ctx *GameContext, dt time.Duration)
	Priority() int // Lower values run first
}

// Controller drives the game state machine one tick at a time
//
// Tick order:
//  1. leave PhasePaused once the pause has elapsed
//  2. dispatch events queued by input since the last tick
//  3. in PhaseActive only: run systems by priority, then dispatch the events they raised
type Controller struct {
	ctx     *GameContext
	systems []System

	reportedDrops uint64
}

// NewController creates a controller over the given context
func NewController(ctx *GameContext) *Controller {
	return &Controller{
		ctx:     ctx,
		systems: make([]System, 0, 4),
	}
}

// Context returns the controlled game context
func (c *Controller) Context() *GameContext {
	return c.ctx
}

// AddSystem registers a system, keeping priority order stable for equal priorities
func (c *Controller) AddSystem(s System) {
	pos := len(c.systems)
	for i, existing := range c.systems {
		if s.Priority() < existing.Priority() {
			pos = i
			break
		}
	}
	c.systems = append(c.systems, nil)
	copy(c.systems[pos+1:], c.systems[pos:])
	c.systems[pos] = s
}

// RegisterHandler routes events to the handler during dispatch
func (c *Controller) RegisterHandler(h events.Handler[*GameContext]) {
	c.ctx.Router.Register(h)
}

// Tick advances the game by one nominal tick at the provider's current time
func (c *Controller) Tick() {
	ctx := c.ctx
	ctx.Now = ctx.TimeProvider.Now()
	ctx.State.FrameNumber++

	if ctx.State.ResumeIfDue(ctx.Now) {
		log.Printf("[CONTROLLER] pause elapsed, resuming at frame %d", ctx.State.FrameNumber)
	}

	ctx.Router.DispatchAll(ctx)

	if ctx.State.Simulating() {
		for _, s := range c.systems {
			s.Update(ctx, constants.GameUpdateInterval)
		}
		ctx.Router.DispatchAll(ctx)
	}

	if dropped := ctx.Events.Dropped(); dropped != c.reportedDrops {
		log.Printf("[CONTROLLER] event queue overflow, %d events dropped", dropped-c.reportedDrops)
		c.reportedDrops = dropped
	}
}
