// Package panel implements the in-scene settings panel. Sliders drive the
// wave parameters and streaming config live; tiles rebuild when a change
// invalidates resident geometry.
package panel

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"openwater/internal/config"
	"openwater/internal/graphics"
	"openwater/internal/graphics/renderables/ui"
	"openwater/internal/graphics/renderer"
	"openwater/internal/input"
	"openwater/internal/ui/widget"
	"openwater/internal/wave"
	"openwater/internal/world"
)

const (
	sliderW = 220.0
	sliderH = 18.0
	rowStep = 52.0
)

const toggleW = 40.0

type sliderRow struct {
	slider *widget.Slider
	label  string
	format func(val float32) string
}

type toggleRow struct {
	toggle *widget.Toggle
	label  string
	get    func() bool
}

// Panel is the settings overlay. It implements renderer.Renderable but only
// draws while Visible.
type Panel struct {
	uiRenderer *ui.UI
	window     *glfw.Window
	inputs     *input.InputManager
	font       *graphics.FontRenderer

	waves    *wave.Parameters
	streamer *world.Streamer

	rows    []sliderRow
	toggles []toggleRow

	// Visible gates rendering and input. The game loop releases the cursor
	// while the panel is open.
	Visible bool
}

func NewPanel(uiRenderer *ui.UI, window *glfw.Window, im *input.InputManager, waves *wave.Parameters, streamer *world.Streamer) *Panel {
	p := &Panel{
		uiRenderer: uiRenderer,
		window:     window,
		inputs:     im,
		waves:      waves,
		streamer:   streamer,
	}
	p.buildRows()
	return p
}

func (p *Panel) buildRows() {
	waves := p.waves
	streamer := p.streamer

	p.addRow("Amplitude", ratio(waves.Amplitude(), 0.05, 2.0), 0, func(val float32) {
		waves.SetAmplitude(lerp(val, 0.05, 2.0))
	}, func(val float32) string {
		return fmt.Sprintf("%.2f m", lerp(val, 0.05, 2.0))
	})

	p.addRow("Frequency", ratio(waves.Frequency(), 0.005, 0.2), 0, func(val float32) {
		waves.SetFrequency(lerp(val, 0.005, 0.2))
	}, func(val float32) string {
		return fmt.Sprintf("%.3f", lerp(val, 0.005, 0.2))
	})

	p.addRow("Wave speed", ratio(waves.Speed(), 0.0, 2.0), 0, func(val float32) {
		waves.SetSpeed(lerp(val, 0.0, 2.0))
	}, func(val float32) string {
		return fmt.Sprintf("%.2f", lerp(val, 0.0, 2.0))
	})

	p.addRow("Persistence", ratio(waves.Persistence(), wave.MinPersistence, 0.9), 0, func(val float32) {
		waves.SetPersistence(lerp(val, wave.MinPersistence, 0.9))
	}, func(val float32) string {
		return fmt.Sprintf("%.2f", lerp(val, wave.MinPersistence, 0.9))
	})

	octaveSpan := float32(wave.MaxOctaves - wave.MinOctaves)
	p.addRow("Octaves", float32(waves.Octaves()-wave.MinOctaves)/octaveSpan, wave.MaxOctaves-wave.MinOctaves+1, func(val float32) {
		waves.SetOctaves(wave.MinOctaves + int(val*octaveSpan+0.5))
	}, func(val float32) string {
		return fmt.Sprintf("%d", wave.MinOctaves+int(val*octaveSpan+0.5))
	})

	// View distance in tiles. The vertex-budget maximum moves with the tile
	// resolution, so the range is derived fresh on every interaction rather
	// than captured here.
	p.addRow("View distance", viewDistanceRatio(config.GetViewDistance()), 0, func(val float32) {
		config.SetViewDistance(viewDistanceForRatio(val))
		streamer.Invalidate()
	}, func(val float32) string {
		return fmt.Sprintf("%d tiles", viewDistanceForRatio(val))
	})

	// Base resolution as a power-of-two exponent: 8..256 cells per tile edge.
	p.addRow("Tile resolution", ratioExp(config.GetBaseResolution()), 6, func(val float32) {
		config.SetBaseResolution(8 << int(val*5+0.5))
		streamer.Rebuild()
	}, func(val float32) string {
		return fmt.Sprintf("%d", 8<<int(val*5+0.5))
	})

	// FPS limit 30..240, top of the range uncaps.
	curFPS := config.GetFPSLimit()
	var fpsVal float32
	if curFPS <= 0 {
		fpsVal = 1.0
	} else {
		fpsVal = float32(curFPS-30) / float32(240-30)
	}
	p.addRow("FPS limit", fpsVal, 0, func(val float32) {
		if val > 0.99 {
			config.SetFPSLimit(0)
		} else {
			config.SetFPSLimit(30 + int(val*210+0.5))
		}
	}, func(val float32) string {
		if val > 0.99 {
			return "uncapped"
		}
		return fmt.Sprintf("%d", 30+int(val*210+0.5))
	})
}

func (p *Panel) addRow(label string, initial float32, steps int, onChange func(float32), format func(float32) string) {
	id := fmt.Sprintf("panel.%d", len(p.rows))
	s := widget.NewSlider(0, 0, sliderW, sliderH, clamp01(initial), steps, id, onChange)
	p.rows = append(p.rows, sliderRow{slider: s, label: label, format: format})
}

// AddToggle appends a boolean row backed by external state. The getter keeps
// the widget in sync when the same state is flipped from the keyboard.
func (p *Panel) AddToggle(label string, get func() bool, set func(bool)) {
	t := widget.NewToggle(label, 0, 0, toggleW, sliderH, get(), set)
	p.toggles = append(p.toggles, toggleRow{toggle: t, label: label, get: get})
}

// Init loads the label font. Like the HUD, a missing font only drops the
// labels; the sliders still work.
func (p *Panel) Init() error {
	fontPath := filepath.Join(graphics.FontsDir, "DejaVuSansMono.ttf")
	atlas, err := graphics.BuildFontAtlas(fontPath, 15)
	if err != nil {
		log.Printf("panel: font unavailable, labels disabled: %v", err)
		return nil
	}
	font, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		log.Printf("panel: font renderer init failed, labels disabled: %v", err)
		return nil
	}
	p.font = font
	return nil
}

func (p *Panel) Render(ctx renderer.RenderContext) {
	if !p.Visible {
		return
	}

	winW, _ := p.window.GetSize()
	fWinW := float32(winW)

	panelW := float32(sliderW + 220)
	panelH := float32(len(p.rows)+len(p.toggles))*rowStep + 60
	panelX := fWinW - panelW - 20
	panelY := float32(20)

	p.uiRenderer.DrawFilledRect(panelX, panelY, panelW, panelH, mgl32.Vec3{0.05, 0.08, 0.12}, 0.75)

	if p.font != nil {
		p.font.Render("Scene settings", panelX+16, panelY+28, 0.9, mgl32.Vec3{1, 1, 1})
	}

	y := panelY + 56
	for i := range p.rows {
		row := &p.rows[i]
		row.slider.SetPosition(panelX+16, y)
		row.slider.Render(p.uiRenderer, p.window)

		if p.font != nil {
			p.font.Render(row.label, panelX+16+sliderW+12, y+sliderH-4, 0.75, mgl32.Vec3{0.85, 0.85, 0.85})
			p.font.Render(row.format(row.slider.Value), panelX+16+sliderW+12, y+sliderH+12, 0.65, mgl32.Vec3{0.6, 0.7, 0.8})
		}
		y += rowStep
	}

	justPressed := p.inputs != nil && p.inputs.JustPressed(input.ActionMouseLeft)
	for i := range p.toggles {
		row := &p.toggles[i]
		row.toggle.IsOn = row.get()
		row.toggle.SetPosition(panelX+16, y)
		row.toggle.Render(p.uiRenderer, p.window)
		row.toggle.HandleInput(p.window, justPressed)

		if p.font != nil {
			p.font.Render(row.label, panelX+16+toggleW+12, y+sliderH-4, 0.75, mgl32.Vec3{0.85, 0.85, 0.85})
		}
		y += rowStep
	}
}

func (p *Panel) Dispose() {
	if p.font != nil {
		p.font.Dispose()
		p.font = nil
	}
}

func (p *Panel) SetViewport(width, height int) {
	if p.font != nil {
		p.font.SetViewport(width, height)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(val float32, lo, hi float64) float64 {
	return lo + float64(val)*(hi-lo)
}

func ratio(v, lo, hi float64) float32 {
	return float32((v - lo) / (hi - lo))
}

// viewDistanceForRatio maps a slider ratio onto [1, SafeMaxViewDistance],
// reading the budget-derived maximum at call time.
func viewDistanceForRatio(val float32) int {
	maxDist := config.SafeMaxViewDistance()
	if maxDist < 2 {
		return 1
	}
	return 1 + int(val*float32(maxDist-1)+0.5)
}

func viewDistanceRatio(dist int) float32 {
	maxDist := config.SafeMaxViewDistance()
	if maxDist < 2 {
		return 0
	}
	return clamp01(float32(dist-1) / float32(maxDist-1))
}

// ratioExp maps a resolution in {8,16,...,256} onto [0,1] by exponent.
func ratioExp(res int) float32 {
	exp := 0
	for r := res; r > 8 && exp < 5; r >>= 1 {
		exp++
	}
	return float32(exp) / 5
}
