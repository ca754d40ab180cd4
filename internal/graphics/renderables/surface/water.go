package surface

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"openwater/internal/graphics"
	"openwater/internal/graphics/renderer"
	"openwater/internal/profiling"
	"openwater/internal/world"
)

// Water draws all resident water tiles with the displacing wave shader.
type Water struct {
	shader  *graphics.Shader
	builder *Builder
}

func NewWater(builder *Builder) *Water {
	return &Water{builder: builder}
}

func (w *Water) Init() error {
	var err error
	w.shader, err = graphics.NewShader(waterVertSource, waterFragSource)
	return err
}

func (w *Water) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderWater")()

	if ctx.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	w.shader.Use()
	w.shader.SetMatrix4("view", &ctx.View[0])
	w.shader.SetMatrix4("projection", &ctx.Proj[0])

	w.shader.SetFloat("uTime", float32(ctx.Waves.Time()))
	w.shader.SetFloat("uAmplitude", float32(ctx.Waves.Amplitude()))
	w.shader.SetFloat("uFrequency", float32(ctx.Waves.Frequency()))
	w.shader.SetFloat("uSpeed", float32(ctx.Waves.Speed()))
	w.shader.SetFloat("uPersistence", float32(ctx.Waves.Persistence()))
	w.shader.SetFloat("uLacunarity", float32(ctx.Waves.Lacunarity()))
	w.shader.SetInt("uOctaves", int32(ctx.Waves.Octaves()))

	sun := ctx.Day.SunDirection()
	skyColor := ctx.Day.SkyColor()
	tint := ctx.Day.WaterTint()
	w.shader.SetVector3("uSunDir", sun.X(), sun.Y(), sun.Z())
	w.shader.SetVector3("uSkyColor", skyColor.X(), skyColor.Y(), skyColor.Z())
	w.shader.SetVector3("uTint", tint.X(), tint.Y(), tint.Z())
	w.shader.SetVector3("uEyePos", ctx.EyePos.X(), ctx.EyePos.Y(), ctx.EyePos.Z())

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w.builder.forEach(world.RoleWater, func(m *Mesh) {
		m.draw()
	})

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

func (w *Water) Dispose() {
	w.builder.forEach(world.RoleWater, func(m *Mesh) {
		m.Release()
	})
	if w.shader != nil {
		w.shader.Delete()
		w.shader = nil
	}
}

func (w *Water) SetViewport(width, height int) {}
