// Package sky tracks the time of day and derives the ambient colors
// used by the renderer: sky clear color, sun direction and the tint
// blended into the water surface.
package sky

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DayLength is the duration of a full day cycle in seconds.
const DayLength = 600.0

var (
	daySkyColor   = mgl32.Vec3{0.53, 0.74, 0.92}
	nightSkyColor = mgl32.Vec3{0.04, 0.05, 0.12}
	dayTint       = mgl32.Vec3{1.0, 1.0, 1.0}
	nightTint     = mgl32.Vec3{0.25, 0.3, 0.45}
)

// Cycle advances a repeating day/night cycle. The zero value starts at
// mid-morning so a fresh scene opens in daylight.
type Cycle struct {
	elapsed float64
}

func NewCycle() *Cycle {
	return &Cycle{elapsed: DayLength * 0.3}
}

// Advance moves the cycle forward by dt seconds.
func (c *Cycle) Advance(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	c.elapsed += dt
	if c.elapsed >= DayLength {
		c.elapsed = math.Mod(c.elapsed, DayLength)
	}
}

// TimeOfDay returns the cycle position in [0, 1): 0 is midnight, 0.5 is noon.
func (c *Cycle) TimeOfDay() float64 {
	return c.elapsed / DayLength
}

// Daylight returns the light intensity in [0, 1], peaking at noon.
func (c *Cycle) Daylight() float64 {
	// Raised sine with a flattened night plateau.
	d := 0.5 - 0.5*math.Cos(2*math.Pi*c.TimeOfDay())
	return math.Min(1, d*1.4)
}

// SunDirection returns the unit direction towards the sun. At night the sun
// keeps circling below the horizon, which the renderables use as a dim moon.
func (c *Cycle) SunDirection() mgl32.Vec3 {
	angle := 2 * math.Pi * (c.TimeOfDay() - 0.25)
	return mgl32.Vec3{
		float32(0.3 * math.Cos(angle)),
		float32(math.Sin(angle)),
		float32(0.6 * math.Cos(angle)),
	}.Normalize()
}

// SkyColor returns the clear color for the current time of day.
func (c *Cycle) SkyColor() mgl32.Vec3 {
	return lerp3(nightSkyColor, daySkyColor, float32(c.Daylight()))
}

// WaterTint returns the color multiplier applied to the water surface.
func (c *Cycle) WaterTint() mgl32.Vec3 {
	return lerp3(nightTint, dayTint, float32(c.Daylight()))
}

func lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(b.Sub(a).Mul(t))
}
