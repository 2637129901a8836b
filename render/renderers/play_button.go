package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/render"
)

// PlayButtonRenderer draws the play button while no game is in progress
type PlayButtonRenderer struct {
	gameCtx *engine.GameContext
	palette render.Palette
}

func NewPlayButtonRenderer(gameCtx *engine.GameContext, palette render.Palette) *PlayButtonRenderer {
	return &PlayButtonRenderer{gameCtx: gameCtx, palette: palette}
}

// IsVisible implements VisibilityToggle
func (p *PlayButtonRenderer) IsVisible() bool {
	return !p.gameCtx.State.GameActive()
}

// Render implements SystemRenderer
func (p *PlayButtonRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c0, r0, c1, r1 := ctx.RectToCells(p.gameCtx.PlayButton())
	style := tcell.StyleDefault.Foreground(p.palette.ButtonText).Background(p.palette.Button).Bold(true)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			buf.Set(x, y, ' ', style)
		}
	}

	label := constants.PlayButtonLabel
	labelWidth := runewidth.StringWidth(label)
	if labelWidth > c1-c0 {
		label = runewidth.Truncate(label, c1-c0, "")
		labelWidth = runewidth.StringWidth(label)
	}
	x := c0 + (c1-c0-labelWidth)/2
	y := r0 + (r1-r0-1)/2
	drawText(buf, x, y, label, style)
}

// drawText writes s starting at (x, y), advancing by each rune's display width
func drawText(buf *render.RenderBuffer, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		buf.Set(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
