package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/engine"
)

const tick = 50 * time.Millisecond

// newTestGame creates a fully wired game with the world initialized
// mutate adjusts settings before validation
func newTestGame(t *testing.T, mutate func(*engine.Settings)) (*engine.GameContext, *engine.Controller, *engine.MockTimeProvider) {
	t.Helper()
	settings := engine.DefaultSettings()
	if mutate != nil {
		mutate(&settings)
	}
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	ctx, err := engine.NewGameContext(settings, clock, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Failed to create context: %v", err)
	}
	c := engine.NewController(ctx)
	RegisterAll(c)
	InitWorld(ctx)
	return ctx, c, clock
}

// startGame activates the game directly, as a play click would
func startGame(t *testing.T, ctx *engine.GameContext) {
	t.Helper()
	StartNewGame(ctx)
	if !ctx.State.Simulating() {
		t.Fatal("Expected game to be simulating after start")
	}
}

// placeAliens replaces the fleet with aliens at the given positions
func placeAliens(ctx *engine.GameContext, positions ...[2]float64) []*components.Alien {
	ctx.World.ClearAliens()
	s := ctx.Settings
	for _, p := range positions {
		ctx.World.Aliens = append(ctx.World.Aliens,
			components.NewAlien(p[0], p[1], s.AlienWidth, s.AlienHeight, s.AlienSpeed, &ctx.State.FleetDirection))
	}
	return ctx.World.Aliens
}
