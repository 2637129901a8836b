package renderers

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alien-invasion/components"
	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/render"
	"github.com/lixenwraith/alien-invasion/systems"
)

const (
	testCols = 150
	testRows = 41
)

type testFrame struct {
	gameCtx *engine.GameContext
	orch    *render.RenderOrchestrator
	rctx    render.RenderContext
}

func newTestFrame(t *testing.T) *testFrame {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(testCols, testRows)
	t.Cleanup(screen.Fini)

	settings := engine.DefaultSettings()
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	gameCtx, err := engine.NewGameContext(settings, clock, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Failed to create context: %v", err)
	}
	systems.InitWorld(gameCtx)

	palette, err := render.NewPalette(settings)
	if err != nil {
		t.Fatalf("Failed to build palette: %v", err)
	}
	orch := render.NewRenderOrchestrator(screen, palette.Background)
	RegisterAll(orch, gameCtx, palette)

	return &testFrame{
		gameCtx: gameCtx,
		orch:    orch,
		rctx:    render.NewRenderContext(settings, testCols, testRows),
	}
}

func (f *testFrame) render() *render.RenderBuffer {
	f.orch.RenderFrame(f.rctx.WithFrame(f.gameCtx))
	return f.orch.Buffer()
}

func (f *testFrame) row(y int) string {
	var sb strings.Builder
	buf := f.orch.Buffer()
	w, _ := buf.Bounds()
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func countRune(buf *render.RenderBuffer, want rune) int {
	w, h := buf.Bounds()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if buf.Get(x, y).Rune == want {
				n++
			}
		}
	}
	return n
}

func TestInactiveFrameShowsPlayButton(t *testing.T) {
	f := newTestFrame(t)
	f.render()

	c0, r0, c1, r1 := f.rctx.RectToCells(f.gameCtx.PlayButton())
	label := strings.TrimSpace(string([]rune(f.row(r0 + (r1-r0-1)/2))[c0:c1]))
	if label != constants.PlayButtonLabel {
		t.Errorf("Button label = %q, want %q", label, constants.PlayButtonLabel)
	}

	status := f.row(f.rctx.StatusRow())
	if !strings.Contains(status, strings.TrimSpace(constants.StatusTextReady)) {
		t.Errorf("Status bar = %q, want ready text", status)
	}
	if !strings.Contains(status, "Ships: 3") {
		t.Errorf("Status bar = %q, want ship count", status)
	}
}

func TestActiveFrameHidesPlayButton(t *testing.T) {
	f := newTestFrame(t)
	systems.StartNewGame(f.gameCtx)
	buf := f.render()

	c0, r0, c1, r1 := f.rctx.RectToCells(f.gameCtx.PlayButton())
	_, bg, _ := buf.Get((c0+c1)/2, (r0+r1)/2).Style.Decompose()
	palette, _ := render.NewPalette(f.gameCtx.Settings)
	if bg == palette.Button {
		t.Error("Play button drawn during active game")
	}
	if status := f.row(f.rctx.StatusRow()); !strings.Contains(status, strings.TrimSpace(constants.StatusTextActive)) {
		t.Errorf("Status bar = %q, want active text", status)
	}
}

func TestEntitiesDrawn(t *testing.T) {
	f := newTestFrame(t)
	systems.StartNewGame(f.gameCtx)
	ship := f.gameCtx.World.Ship
	settings := f.gameCtx.Settings
	bullet := components.NewBullet(ship, settings.BulletWidth, settings.BulletHeight, settings.BulletSpeed)
	bullet.Y = 300
	f.gameCtx.World.AddBullet(bullet)
	buf := f.render()

	if countRune(buf, constants.AlienChar) == 0 {
		t.Error("No alien cells drawn")
	}
	if countRune(buf, constants.ShipNoseChar) != 1 {
		t.Error("Expected exactly one ship nose cell")
	}
	if countRune(buf, constants.BulletChar) == 0 {
		t.Error("Bullet not drawn")
	}

	stars := countRune(buf, constants.StarChar) + countRune(buf, constants.StarBigChar)
	if stars == 0 {
		t.Error("No stars drawn")
	}
}

func TestStatusBarGameOverAndPaused(t *testing.T) {
	f := newTestFrame(t)
	systems.StartNewGame(f.gameCtx)

	f.gameCtx.State.Pause(f.gameCtx.Now.Add(time.Second))
	f.render()
	if status := f.row(f.rctx.StatusRow()); !strings.Contains(status, strings.TrimSpace(constants.StatusTextPaused)) {
		t.Errorf("Status bar = %q, want paused text", status)
	}

	f.gameCtx.State.ShipsLeft = 1
	systems.HandleShipHit(f.gameCtx, 0)
	f.render()
	if status := f.row(f.rctx.StatusRow()); !strings.Contains(status, strings.TrimSpace(constants.StatusTextGameOver)) {
		t.Errorf("Status bar = %q, want game over text", status)
	}
}

func TestStatusBarNarrowTerminal(t *testing.T) {
	f := newTestFrame(t)
	f.rctx = render.NewRenderContext(f.gameCtx.Settings, 8, 5)
	f.orch.Resize(8, 5)
	f.render()

	status := f.row(f.rctx.StatusRow())
	if len([]rune(status)) != 8 {
		t.Fatalf("Status row width = %d, want 8", len([]rune(status)))
	}
	if !strings.Contains(status, strings.TrimSpace(constants.StatusTextReady)) {
		t.Errorf("Narrow status = %q, want phase text kept", status)
	}
}
