package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/render"
)

// StatusBarRenderer draws ships left, wave and kills below the play field, with the phase on the right
type StatusBarRenderer struct {
	gameCtx *engine.GameContext
	palette render.Palette
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(gameCtx *engine.GameContext, palette render.Palette) *StatusBarRenderer {
	return &StatusBarRenderer{gameCtx: gameCtx, palette: palette}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.StatusRow()
	if y >= ctx.ScreenHeight {
		return
	}
	style := tcell.StyleDefault.Foreground(s.palette.StatusText).Background(s.palette.StatusBg)
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, y, ' ', style)
	}

	state := s.gameCtx.State
	stats := fmt.Sprintf(" Ships: %d  Wave: %d  Aliens: %d  Destroyed: %d",
		state.ShipsLeft, state.Wave, len(s.gameCtx.World.Aliens), state.AliensDestroyed)
	phase := s.phaseText()

	// Phase text has priority when the terminal is narrow
	phaseWidth := runewidth.StringWidth(phase)
	room := ctx.ScreenWidth - phaseWidth
	if room < 0 {
		phase = runewidth.Truncate(phase, ctx.ScreenWidth, "")
		phaseWidth = runewidth.StringWidth(phase)
		room = 0
	}
	if runewidth.StringWidth(stats) > room {
		stats = runewidth.Truncate(stats, room, "")
	}

	drawText(buf, 0, y, stats, style)
	drawText(buf, ctx.ScreenWidth-phaseWidth, y, phase, style.Bold(true))
}

func (s *StatusBarRenderer) phaseText() string {
	state := s.gameCtx.State
	switch state.Phase {
	case engine.PhasePaused:
		return constants.StatusTextPaused
	case engine.PhaseActive:
		return constants.StatusTextActive
	}
	if state.ShipsLeft == 0 {
		return constants.StatusTextGameOver
	}
	return constants.StatusTextReady
}
