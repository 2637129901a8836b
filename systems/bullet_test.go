package systems

import (
	"testing"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/events"
)

func TestFireRespectsBulletCap(t *testing.T) {
	ctx, _, _ := newTestGame(t, nil)
	startGame(t, ctx)

	for i := 0; i < 3; i++ {
		if !FireBullet(ctx) {
			t.Fatalf("Expected fire %d to succeed", i+1)
		}
	}
	if FireBullet(ctx) {
		t.Error("Expected 4th fire to be rejected")
	}
	if len(ctx.World.Bullets) != 3 {
		t.Fatalf("Expected 3 bullets, got %d", len(ctx.World.Bullets))
	}

	// Clear one bullet off the top of the screen
	ctx.World.Bullets[0].Y = -100
	if removed := CullBullets(ctx.World); removed != 1 {
		t.Fatalf("Expected 1 bullet culled, got %d", removed)
	}
	if !FireBullet(ctx) {
		t.Error("Expected fire to succeed after a bullet cleared")
	}
}

func TestBulletCountNeverExceedsCap(t *testing.T) {
	ctx, c, clock := newTestGame(t, func(s *engine.Settings) { s.BulletsAllowed = 2 })
	startGame(t, ctx)
	// No aliens to absorb bullets
	ctx.World.ClearAliens()

	for i := 0; i < 200; i++ {
		ctx.PushEvent(events.EventFireRequest, nil)
		ctx.PushEvent(events.EventFireRequest, nil)
		clock.Advance(tick)
		c.Tick()
		if n := len(ctx.World.Bullets); n > 2 {
			t.Fatalf("Expected at most 2 bullets, got %d at tick %d", n, i)
		}
	}
}

func TestFireSpawnsAtShipTopCenter(t *testing.T) {
	ctx, _, _ := newTestGame(t, nil)
	startGame(t, ctx)
	ctx.World.Ship.X = 100

	FireBullet(ctx)
	b := ctx.World.Bullets[0]
	ship := ctx.World.Ship.Bounds()
	if b.Bounds().CenterX() != ship.CenterX() {
		t.Errorf("Expected bullet centered at %d, got %d", ship.CenterX(), b.Bounds().CenterX())
	}
	if int(b.Y) != ship.Y {
		t.Errorf("Expected bullet top at ship top %d, got %v", ship.Y, b.Y)
	}
}

func TestFireIgnoredUnlessSimulating(t *testing.T) {
	ctx, c, _ := newTestGame(t, nil)

	ctx.PushEvent(events.EventFireRequest, nil)
	c.Tick()
	if len(ctx.World.Bullets) != 0 {
		t.Errorf("Expected no bullets while inactive, got %d", len(ctx.World.Bullets))
	}

	startGame(t, ctx)
	ctx.State.Pause(ctx.Now.Add(tick * 10))
	ctx.PushEvent(events.EventFireRequest, nil)
	c.Tick()
	if len(ctx.World.Bullets) != 0 {
		t.Errorf("Expected no bullets while paused, got %d", len(ctx.World.Bullets))
	}
}

func TestCullIsIdempotent(t *testing.T) {
	ctx, _, _ := newTestGame(t, nil)
	visible := &components.Bullet{Y: 300, Width: 3, Height: 15}
	gone := &components.Bullet{Y: -40, Width: 3, Height: 15}
	ctx.World.AddBullet(visible)
	ctx.World.AddBullet(gone)

	if removed := CullBullets(ctx.World); removed != 1 {
		t.Errorf("Expected 1 removal, got %d", removed)
	}
	if removed := CullBullets(ctx.World); removed != 0 {
		t.Errorf("Expected second cull to be a no-op, got %d", removed)
	}
	if len(ctx.World.Bullets) != 1 || ctx.World.Bullets[0] != visible {
		t.Errorf("Expected only the visible bullet to remain")
	}
}

func TestBulletSystemMovesThenCulls(t *testing.T) {
	ctx, _, _ := newTestGame(t, nil)
	// Bottom at 9: one tick of 24 moves it to -30, bottom -15
	ctx.World.AddBullet(&components.Bullet{Y: -6, Width: 3, Height: 15, Speed: 24})
	ctx.World.AddBullet(&components.Bullet{Y: 400, Width: 3, Height: 15, Speed: 24})

	NewBulletSystem().Update(ctx, tick)
	if len(ctx.World.Bullets) != 1 {
		t.Fatalf("Expected 1 bullet after cull, got %d", len(ctx.World.Bullets))
	}
	if ctx.World.Bullets[0].Y != 376 {
		t.Errorf("Expected remaining bullet at 376, got %v", ctx.World.Bullets[0].Y)
	}
}
