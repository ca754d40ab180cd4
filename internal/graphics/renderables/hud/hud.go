// Package hud draws the text overlay: frame rate, streaming stats, wave
// parameters and boat telemetry, plus the per-frame profiler when toggled.
package hud

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"openwater/internal/graphics"
	"openwater/internal/graphics/renderer"
	"openwater/internal/profiling"
)

const fontFile = "DejaVuSansMono.ttf"

// HUD implements the text overlay renderable
type HUD struct {
	fontRenderer *graphics.FontRenderer

	// ShowProfiling toggles the per-frame timing block.
	ShowProfiling bool

	// FPS tracking
	frames       int
	lastFPSCheck time.Time
	currentFPS   int
}

// NewHUD creates a new HUD renderable
func NewHUD() *HUD {
	return &HUD{lastFPSCheck: time.Now()}
}

// Init loads the font. A missing or unreadable font disables the overlay
// but never fails scene startup; the water does not need text to render.
func (h *HUD) Init() error {
	fontPath := filepath.Join(graphics.FontsDir, fontFile)
	atlas, err := graphics.BuildFontAtlas(fontPath, 18)
	if err != nil {
		log.Printf("hud: font unavailable, overlay disabled: %v", err)
		return nil
	}

	fontRenderer, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		log.Printf("hud: font renderer init failed, overlay disabled: %v", err)
		return nil
	}

	h.fontRenderer = fontRenderer
	return nil
}

// Render renders the HUD elements
func (h *HUD) Render(ctx renderer.RenderContext) {
	// Update FPS tracking even when the overlay is disabled
	h.frames++
	if time.Since(h.lastFPSCheck) >= time.Second {
		h.currentFPS = h.frames
		h.lastFPSCheck = time.Now()
		h.frames = 0
	}

	if h.fontRenderer == nil {
		return
	}
	defer profiling.Track("renderer.renderHUD")()

	pos := ctx.Boat.Body.Position
	lines := []string{
		fmt.Sprintf("FPS: %d", h.currentFPS),
		fmt.Sprintf("Pos: %.1f %.1f %.1f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("Tiles: %d", ctx.Streamer.Len()),
		fmt.Sprintf("Speed: %.1f m/s  Heading: %.0f", ctx.Boat.Speed(), ctx.Boat.Heading()),
		fmt.Sprintf("Throttle: %.0f%%  Rudder: %.0f", ctx.Boat.Throttle()*100, ctx.Boat.RudderAngle()),
		fmt.Sprintf("Waves: amp %.2f freq %.3f oct %d", ctx.Waves.Amplitude(), ctx.Waves.Frequency(), ctx.Waves.Octaves()),
	}

	white := mgl32.Vec3{1, 1, 1}
	h.fontRenderer.RenderLines(lines, 10, 24, 20, 0.8, white)

	if h.ShowProfiling {
		h.renderProfiling()
	}
}

func (h *HUD) renderProfiling() {
	top := profiling.TopN(8)
	if top == "" {
		return
	}
	lines := append([]string{"frame timings"}, strings.Split(top, ", ")...)

	yellow := mgl32.Vec3{1, 0.9, 0.4}
	h.fontRenderer.RenderLines(lines, 10, 200, 18, 0.7, yellow)
}

// Dispose cleans up font resources
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
		h.fontRenderer = nil
	}
}

// SetViewport updates the text projection after a resize
func (h *HUD) SetViewport(width, height int) {
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}
