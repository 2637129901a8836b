package systems

import (
	"time"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/events"
)

// CollisionSystem resolves bullet, alien and ship overlaps after movement
// Outcomes that change game state are raised as events for LifecycleSystem
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update raises at most one ship hit per tick; a direct collision takes precedence over reaching the bottom
func (s *CollisionSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	destroyed := ResolveBulletAlien(ctx)
	if destroyed > 0 && len(ctx.World.Aliens) == 0 {
		ctx.PushEvent(events.EventWaveCleared, &events.WaveClearedPayload{Destroyed: destroyed})
		return
	}

	if _, hit := CollideAny(ctx.World.Ship.Bounds(), ctx.World.Aliens); hit {
		ctx.PushEvent(events.EventShipHit, &events.ShipHitPayload{Cause: events.HitCollision})
		return
	}

	if AlienReachedBottom(ctx.World.Aliens, ctx.Settings.ScreenHeight) {
		ctx.PushEvent(events.EventShipHit, &events.ShipHitPayload{Cause: events.HitBottom})
	}
}

// ResolveBulletAlien removes every bullet and alien that overlap
// Returns the number of aliens destroyed
func ResolveBulletAlien(ctx *engine.GameContext) int {
	if len(ctx.World.Bullets) == 0 || len(ctx.World.Aliens) == 0 {
		return 0
	}
	hitBullets, hitAliens := GroupCollide(ctx.World.Bullets, ctx.World.Aliens)
	ctx.World.RemoveBullets(hitBullets)
	destroyed := ctx.World.RemoveAliens(hitAliens)
	ctx.State.AliensDestroyed += destroyed
	return destroyed
}

// AlienReachedBottom reports whether any alien's bottom edge is at or below the screen bottom
func AlienReachedBottom(aliens []*components.Alien, screenHeight int) bool {
	for _, a := range aliens {
		if a.Bounds().Bottom() >= screenHeight {
			return true
		}
	}
	return false
}
