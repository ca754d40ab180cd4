package renderer

import (
	"openwater/internal/boat"
	"openwater/internal/graphics"
	"openwater/internal/sky"
	"openwater/internal/wave"
	"openwater/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera    *graphics.Camera
	Streamer  *world.Streamer
	Boat      *boat.Boat
	Waves     *wave.Parameters
	Day       *sky.Cycle
	DT        float64
	View      mgl32.Mat4
	Proj      mgl32.Mat4
	EyePos    mgl32.Vec3
	Wireframe bool
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
