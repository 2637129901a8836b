package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/core"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/render"
)

// fillRect paints every cell covered by r with ch in fg over the existing background
func fillRect(ctx render.RenderContext, buf *render.RenderBuffer, r core.Rect, ch rune, fg tcell.Color) {
	c0, r0, c1, r1 := ctx.RectToCells(r)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			buf.SetFgOnly(x, y, ch, fg)
		}
	}
}

// ShipRenderer draws the player ship with its nose on the top-center cell
type ShipRenderer struct {
	gameCtx *engine.GameContext
	palette render.Palette
}

func NewShipRenderer(gameCtx *engine.GameContext, palette render.Palette) *ShipRenderer {
	return &ShipRenderer{gameCtx: gameCtx, palette: palette}
}

// Render implements SystemRenderer
func (s *ShipRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	bounds := s.gameCtx.World.Ship.Bounds()
	fillRect(ctx, buf, bounds, constants.ShipChar, s.palette.Ship)

	c0, r0, c1, _ := ctx.RectToCells(bounds)
	if c1 > c0 {
		buf.SetFgOnly((c0+c1-1)/2, r0, constants.ShipNoseChar, s.palette.Ship)
	}
}

// FleetRenderer draws every alien
type FleetRenderer struct {
	gameCtx *engine.GameContext
	palette render.Palette
}

func NewFleetRenderer(gameCtx *engine.GameContext, palette render.Palette) *FleetRenderer {
	return &FleetRenderer{gameCtx: gameCtx, palette: palette}
}

// Render implements SystemRenderer
func (f *FleetRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, alien := range f.gameCtx.World.Aliens {
		fillRect(ctx, buf, alien.Bounds(), constants.AlienChar, f.palette.Alien)
	}
}

// BulletRenderer draws bullets in the configured bullet color
type BulletRenderer struct {
	gameCtx *engine.GameContext
	palette render.Palette
}

func NewBulletRenderer(gameCtx *engine.GameContext, palette render.Palette) *BulletRenderer {
	return &BulletRenderer{gameCtx: gameCtx, palette: palette}
}

// Render implements SystemRenderer
func (b *BulletRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, bullet := range b.gameCtx.World.Bullets {
		bounds := bullet.Bounds()
		if bounds.Bottom() <= 0 {
			continue
		}
		fillRect(ctx, buf, bounds, constants.BulletChar, b.palette.Bullet)
	}
}
