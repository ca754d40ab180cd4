package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"openwater/internal/boat"
	"openwater/internal/graphics"
	"openwater/internal/graphics/renderables/hud"
	"openwater/internal/graphics/renderables/panel"
	"openwater/internal/graphics/renderables/surface"
	"openwater/internal/graphics/renderables/ui"
	"openwater/internal/graphics/renderer"
	"openwater/internal/input"
	"openwater/internal/wave"
	"openwater/internal/world"
)

// Seabed seed is fixed so the same relief comes back on every run.
const floorSeed = 7

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	// Simulation state
	waves := wave.NewParameters()
	field := wave.NewField(waves)
	floor := world.NewFloorField(floorSeed)

	// Tile streaming with GPU-backed geometry
	builder := surface.NewBuilder(floor)
	streamer := world.NewStreamer(builder)

	bt := boat.New()
	cam := boat.NewFollowCamera()

	im := input.NewInputManager()

	// Renderable features; floor draws before the translucent water
	uiRenderer := ui.NewUI()
	panelRenderer := panel.NewPanel(uiRenderer, window, im, waves, streamer)
	hudRenderer := hud.NewHUD()

	r, err := renderer.NewRenderer(graphics.WinWidth, graphics.WinHeight,
		surface.NewFloor(builder),
		surface.NewWater(builder),
		uiRenderer,
		panelRenderer,
		hudRenderer,
	)
	if err != nil {
		log.Fatalf("renderer init: %v", err)
	}

	// Debug toggles share state with the keyboard shortcuts
	panelRenderer.AddToggle("Wireframe",
		func() bool { return r.Wireframe },
		func(on bool) { r.Wireframe = on })
	panelRenderer.AddToggle("Profiling overlay",
		func() bool { return hudRenderer.ShowProfiling },
		func(on bool) { hudRenderer.ShowProfiling = on })

	loop := NewGameLoop(window, r, panelRenderer, hudRenderer, streamer, bt, cam, field, waves, im)
	setupInputHandlers(window, r, loop, cam, im)

	loop.Run()

	streamer.ReleaseAll()
	r.Dispose()
}
