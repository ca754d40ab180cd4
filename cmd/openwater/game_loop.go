package main

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"openwater/internal/boat"
	"openwater/internal/graphics/renderables/hud"
	"openwater/internal/graphics/renderables/panel"
	"openwater/internal/graphics/renderer"
	"openwater/internal/input"
	"openwater/internal/profiling"
	"openwater/internal/sky"
	"openwater/internal/wave"
	"openwater/internal/world"
)

const (
	// Fixed physics step; the render rate floats on top of it.
	physicsStep = 1.0 / 120.0
	// Cap on catch-up steps after a hitch so the simulation cannot spiral.
	maxSubsteps = 8
	// Clamp long frame deltas (debugger pauses, window drags).
	maxFrameDelta = 0.1
)

// GameLoop manages the main loop state
type GameLoop struct {
	window        *glfw.Window
	renderer      *renderer.Renderer
	panelRenderer *panel.Panel
	hudRenderer   *hud.HUD

	streamer *world.Streamer
	boat     *boat.Boat
	camera   *boat.FollowCamera
	field    *wave.Field
	waves    *wave.Parameters
	day      *sky.Cycle

	inputManager *input.InputManager
	fpsLimiter   *FPSLimiter

	// Timing
	lastTime    time.Time
	accumulator float64
}

// NewGameLoop creates a new game loop with all components
func NewGameLoop(window *glfw.Window, r *renderer.Renderer, panelRenderer *panel.Panel, hudRenderer *hud.HUD,
	streamer *world.Streamer, bt *boat.Boat, cam *boat.FollowCamera, field *wave.Field, waves *wave.Parameters,
	im *input.InputManager) *GameLoop {
	return &GameLoop{
		window:        window,
		renderer:      r,
		panelRenderer: panelRenderer,
		hudRenderer:   hudRenderer,
		streamer:      streamer,
		boat:          bt,
		camera:        cam,
		field:         field,
		waves:         waves,
		day:           sky.NewCycle(),
		inputManager:  im,
		fpsLimiter:    NewFPSLimiter(),
		lastTime:      time.Now(),
	}
}

// PanelOpen reports whether the settings panel has the cursor.
func (g *GameLoop) PanelOpen() bool {
	return g.panelRenderer.Visible
}

// Run starts the main loop and blocks until the window closes.
func (g *GameLoop) Run() {
	for !g.window.ShouldClose() {
		g.tick()
	}
}

func (g *GameLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(g.lastTime).Seconds()
	g.lastTime = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	// Poll events at start
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	g.handleInputActions(dt)

	// Wave phase and day cycle advance in wall time, not physics time
	g.waves.Advance(dt)
	g.day.Advance(dt)

	// Fixed-step physics with catch-up
	g.accumulator += dt
	steps := 0
	for g.accumulator >= physicsStep && steps < maxSubsteps {
		g.boat.Step(g.field, float32(physicsStep))
		g.accumulator -= physicsStep
		steps++
	}
	if steps == maxSubsteps {
		// Drop the backlog after a long stall
		g.accumulator = 0
	}

	// Stream tiles around the boat
	pos := g.boat.Body.Position
	g.streamer.ReconcileAround(float64(pos.X()), float64(pos.Z()))

	// Render frame
	g.renderer.Render(g.streamer, g.boat, g.camera, g.waves, g.day, dt)

	// Present
	func() { defer profiling.Track("glfw.SwapBuffers")(); g.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	g.inputManager.PostUpdate()

	// FPS limiting
	g.fpsLimiter.Wait()
}

func (g *GameLoop) handleInputActions(dt float64) {
	im := g.inputManager

	if im.JustPressed(input.ActionPause) {
		if g.panelRenderer.Visible {
			g.closePanel()
		} else {
			g.window.SetShouldClose(true)
		}
	}

	if im.JustPressed(input.ActionPanel) {
		if g.panelRenderer.Visible {
			g.closePanel()
		} else {
			g.panelRenderer.Visible = true
			g.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}
	}

	if im.JustPressed(input.ActionToggleWireframe) {
		g.renderer.Wireframe = !g.renderer.Wireframe
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		g.hudRenderer.ShowProfiling = !g.hudRenderer.ShowProfiling
	}

	// Helm input is suspended while the panel owns the cursor
	if g.panelRenderer.Visible {
		g.boat.Steer(0, dt)
		return
	}

	switch {
	case im.IsActive(input.ActionSteerLeft):
		g.boat.Steer(-1, dt)
	case im.IsActive(input.ActionSteerRight):
		g.boat.Steer(1, dt)
	default:
		g.boat.Steer(0, dt)
	}

	if im.IsActive(input.ActionThrottleUp) {
		g.boat.AdjustThrottle(1, dt)
	}
	if im.IsActive(input.ActionThrottleDown) {
		g.boat.AdjustThrottle(-1, dt)
	}
}

func (g *GameLoop) closePanel() {
	g.panelRenderer.Visible = false
	g.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}
