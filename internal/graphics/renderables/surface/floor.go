package surface

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"openwater/internal/graphics"
	"openwater/internal/graphics/renderer"
	"openwater/internal/profiling"
	"openwater/internal/world"
)

// Floor draws the seabed tiles. Meshes are already displaced on the CPU,
// so the shader only shades them.
type Floor struct {
	shader  *graphics.Shader
	builder *Builder
}

func NewFloor(builder *Builder) *Floor {
	return &Floor{builder: builder}
}

func (f *Floor) Init() error {
	var err error
	f.shader, err = graphics.NewShader(floorVertSource, floorFragSource)
	return err
}

func (f *Floor) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderFloor")()

	if ctx.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	f.shader.Use()
	f.shader.SetMatrix4("view", &ctx.View[0])
	f.shader.SetMatrix4("projection", &ctx.Proj[0])

	sun := ctx.Day.SunDirection()
	tint := ctx.Day.WaterTint()
	f.shader.SetVector3("uSunDir", sun.X(), sun.Y(), sun.Z())
	f.shader.SetVector3("uTint", tint.X(), tint.Y(), tint.Z())
	f.shader.SetVector3("uEyePos", ctx.EyePos.X(), ctx.EyePos.Y(), ctx.EyePos.Z())

	f.builder.forEach(world.RoleFloor, func(m *Mesh) {
		m.draw()
	})

	gl.BindVertexArray(0)
}

func (f *Floor) Dispose() {
	f.builder.forEach(world.RoleFloor, func(m *Mesh) {
		m.Release()
	})
	if f.shader != nil {
		f.shader.Delete()
		f.shader = nil
	}
}

func (f *Floor) SetViewport(width, height int) {}
