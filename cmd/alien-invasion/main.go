package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/alien-invasion/constants"
	"github.com/lixenwraith/alien-invasion/core"
	"github.com/lixenwraith/alien-invasion/engine"
	"github.com/lixenwraith/alien-invasion/input"
	"github.com/lixenwraith/alien-invasion/render"
	"github.com/lixenwraith/alien-invasion/render/renderers"
	"github.com/lixenwraith/alien-invasion/systems"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alien-invasion: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)

	settings, err := opts.settings()
	if err != nil {
		log.Printf("[MAIN] %v", err)
		fmt.Fprintf(os.Stderr, "alien-invasion: %v\n", err)
		os.Exit(2)
	}

	code := run(settings, opts.randSeed())
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// run owns the terminal for the lifetime of one session and returns the exit code
func run(settings engine.Settings, seed int64) (code int) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "alien-invasion: %v\n", errors.Wrap(err, "create screen"))
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "alien-invasion: %v\n", errors.Wrap(err, "init screen"))
		return 1
	}

	// Panic Recovery: terminal is restored before the trace is printed
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mALIEN-INVASION CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	ctx, err := engine.NewGameContext(settings, engine.NewMonotonicTimeProvider(), rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Printf("[MAIN] %v", err)
		return 2
	}
	palette, err := render.NewPalette(settings)
	if err != nil {
		log.Printf("[MAIN] %v", err)
		return 2
	}

	screen.SetStyle(tcell.StyleDefault.Background(palette.Background))
	screen.EnableMouse()
	screen.HideCursor()

	controller := engine.NewController(ctx)
	systems.RegisterAll(controller)
	systems.InitWorld(ctx)

	orchestrator := render.NewRenderOrchestrator(screen, palette.Background)
	renderers.RegisterAll(orchestrator, ctx, palette)

	cols, rows := screen.Size()
	renderCtx := render.NewRenderContext(settings, cols, rows)
	translator := input.NewTranslator(renderCtx.ToLogical)
	inputHandler := input.NewHandler()

	log.Printf("[MAIN] started: field %dx%d on %dx%d terminal, seed %d",
		settings.ScreenWidth, settings.ScreenHeight, cols, rows, seed)

	eventChan := make(chan tcell.Event, constants.InputChannelSize)
	core.SetCrashScreen(screen)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	tickTicker := time.NewTicker(constants.GameUpdateInterval)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return 0
			}
			in := translator.Translate(ev)
			if in.Kind == input.EventResize {
				renderCtx = render.NewRenderContext(settings, in.X, in.Y)
				translator.SetMapper(renderCtx.ToLogical)
				orchestrator.Resize(in.X, in.Y)
				continue
			}
			if !inputHandler.Handle(ctx, in, ctx.TimeProvider.Now()) {
				log.Printf("[MAIN] quit at frame %d", ctx.State.FrameNumber)
				return 0
			}

		case <-tickTicker.C:
			inputHandler.ReleaseStale(ctx, ctx.TimeProvider.Now())
			controller.Tick()

		case <-frameTicker.C:
			orchestrator.RenderFrame(renderCtx.WithFrame(ctx))
		}
	}
}
