package render

import (
	"time"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/core"
	"github.com/lixenwraith/alien-invasion/engine"
)

// RenderContext provides frame state for renderers, passed by value
// The play field occupies the top FieldRows rows; the status bar sits below it
type RenderContext struct {
	Now   time.Time
	Phase engine.GamePhase

	// Terminal dimensions
	ScreenWidth  int
	ScreenHeight int

	// Play field in cells
	FieldCols int
	FieldRows int

	// Play field in logical units
	LogicalWidth  int
	LogicalHeight int
}

// NewRenderContext creates a context mapping the logical field onto a cols x rows terminal
func NewRenderContext(settings engine.Settings, cols, rows int) RenderContext {
	fieldRows := rows - constants.StatusBarHeight
	if fieldRows < 1 {
		fieldRows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return RenderContext{
		ScreenWidth:   cols,
		ScreenHeight:  rows,
		FieldCols:     cols,
		FieldRows:     fieldRows,
		LogicalWidth:  settings.ScreenWidth,
		LogicalHeight: settings.ScreenHeight,
	}
}

// WithFrame returns a copy stamped with the game's current time and phase
func (rc RenderContext) WithFrame(ctx *engine.GameContext) RenderContext {
	rc.Now = ctx.Now
	rc.Phase = ctx.State.Phase
	return rc
}

// ToScreen converts a logical point to the cell containing it
func (rc RenderContext) ToScreen(x, y float64) (int, int) {
	col := int(x * float64(rc.FieldCols) / float64(rc.LogicalWidth))
	row := int(y * float64(rc.FieldRows) / float64(rc.LogicalHeight))
	return col, row
}

// ToLogical converts a cell to the logical point at its center
func (rc RenderContext) ToLogical(col, row int) (int, int) {
	x := (2*col + 1) * rc.LogicalWidth / (2 * rc.FieldCols)
	y := (2*row + 1) * rc.LogicalHeight / (2 * rc.FieldRows)
	return x, y
}

// RectToCells returns the half-open cell range [c0,c1) x [r0,r1) covered by r
// Non-empty rects always cover at least one cell so small entities stay visible
func (rc RenderContext) RectToCells(r core.Rect) (c0, r0, c1, r1 int) {
	c0 = r.X * rc.FieldCols / rc.LogicalWidth
	r0 = r.Y * rc.FieldRows / rc.LogicalHeight
	c1 = ceilDiv(r.Right()*rc.FieldCols, rc.LogicalWidth)
	r1 = ceilDiv(r.Bottom()*rc.FieldRows, rc.LogicalHeight)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	// Clip to the field
	c0, c1 = max(c0, 0), min(c1, rc.FieldCols)
	r0, r1 = max(r0, 0), min(r1, rc.FieldRows)
	return c0, r0, c1, r1
}

// StatusRow returns the terminal row of the status bar
func (rc RenderContext) StatusRow() int {
	return rc.FieldRows
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}
