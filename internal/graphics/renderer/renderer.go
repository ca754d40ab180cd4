package renderer

import (
	"openwater/internal/boat"
	"openwater/internal/graphics"
	"openwater/internal/profiling"
	"openwater/internal/sky"
	"openwater/internal/wave"
	"openwater/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	// Wireframe applies a line polygon mode to the surface renderables.
	Wireframe bool
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	renderer := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render executes the main render loop
func (r *Renderer) Render(s *world.Streamer, bt *boat.Boat, cam *boat.FollowCamera, waves *wave.Parameters, day *sky.Cycle, dt float64) {
	defer profiling.Track("renderer.Render")()

	// Clear the screen with the current sky color
	skyColor := day.SkyColor()
	gl.ClearColor(skyColor.X(), skyColor.Y(), skyColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// Compute view and projection matrices around the boat
	target := bt.Body.Position
	view := cam.ViewMatrix(target)
	projection := r.camera.GetProjectionMatrix()

	// Create render context
	ctx := RenderContext{
		Camera:    r.camera,
		Streamer:  s,
		Boat:      bt,
		Waves:     waves,
		Day:       day,
		DT:        dt,
		View:      view,
		Proj:      projection,
		EyePos:    cam.Eye(target),
		Wireframe: r.Wireframe,
	}

	// Render all features
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	// Dispose in reverse order
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera's viewport dimensions
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
