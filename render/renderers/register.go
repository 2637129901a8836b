package renderers

import (
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/render"
)

// RegisterAll attaches every game renderer to the orchestrator in draw order
func RegisterAll(o *render.RenderOrchestrator, gameCtx *engine.GameContext, palette render.Palette) {
	o.Register(NewStarfieldRenderer(gameCtx, palette), render.PriorityBackground)
	o.Register(NewFleetRenderer(gameCtx, palette), render.PriorityEntities)
	o.Register(NewBulletRenderer(gameCtx, palette), render.PriorityProjectiles)
	o.Register(NewShipRenderer(gameCtx, palette), render.PriorityPlayer)
	o.Register(NewPlayButtonRenderer(gameCtx, palette), render.PriorityUI)
	o.Register(NewStatusBarRenderer(gameCtx, palette), render.PriorityOverlay)
}
