package systems

import (
	"time"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/events"
)

// BulletSystem fires, moves and culls player bullets
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (s *BulletSystem) Priority() int {
	return constants.PriorityBullet
}

// Update moves every bullet up, then culls those that left the screen
func (s *BulletSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	for _, b := range ctx.World.Bullets {
		b.Update(dt)
	}
	CullBullets(ctx.World)
}

func (s *BulletSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventFireRequest}
}

func (s *BulletSystem) HandleEvent(ctx *engine.GameContext, event events.GameEvent) {
	if event.Type != events.EventFireRequest || !ctx.State.Simulating() {
		return
	}
	FireBullet(ctx)
}

// FireBullet spawns a bullet at the ship's top-center if the volley cap allows it
// Returns false when the cap is reached
func FireBullet(ctx *engine.GameContext) bool {
	if len(ctx.World.Bullets) >= ctx.Settings.BulletsAllowed {
		return false
	}
	ctx.World.AddBullet(components.NewBullet(
		ctx.World.Ship,
		ctx.Settings.BulletWidth,
		ctx.Settings.BulletHeight,
		ctx.Settings.BulletSpeed,
	))
	return true
}

// CullBullets removes bullets whose bottom edge is at or above the top of the screen
// Selection happens in a full scan before removal, so repeated calls are no-ops
func CullBullets(world *engine.World) int {
	var gone map[*components.Bullet]struct{}
	for _, b := range world.Bullets {
		if b.OffScreen() {
			if gone == nil {
				gone = make(map[*components.Bullet]struct{})
			}
			gone[b] = struct{}{}
		}
	}
	return world.RemoveBullets(gone)
}
