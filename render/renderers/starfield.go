package renderers

import (
	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/render"
)

// StarfieldRenderer draws the static background stars
type StarfieldRenderer struct {
	gameCtx *engine.GameContext
	palette render.Palette
}

func NewStarfieldRenderer(gameCtx *engine.GameContext, palette render.Palette) *StarfieldRenderer {
	return &StarfieldRenderer{gameCtx: gameCtx, palette: palette}
}

// Render implements SystemRenderer
func (s *StarfieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, star := range s.gameCtx.World.Stars {
		b := star.Bounds()
		col, row := ctx.ToScreen(float64(b.CenterX()), float64(b.CenterY()))
		if col >= ctx.FieldCols || row >= ctx.FieldRows {
			continue
		}
		if star.Bright {
			buf.SetFgOnly(col, row, constants.StarBigChar, s.palette.Star)
		} else {
			buf.SetFgOnly(col, row, constants.StarChar, s.palette.StarDim)
		}
	}
}
