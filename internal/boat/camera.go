package boat

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// FollowCamera orbits the boat. Mouse movement adjusts yaw/pitch, scroll
// adjusts distance.
type FollowCamera struct {
	Yaw      float64 // degrees around the boat
	Pitch    float64 // degrees above the horizon
	Distance float32

	lastMouseX float64
	lastMouseY float64
	firstMouse bool
}

// NewFollowCamera returns a camera behind and above the boat.
func NewFollowCamera() *FollowCamera {
	return &FollowCamera{
		Yaw:        90,
		Pitch:      18,
		Distance:   14,
		firstMouse: true,
	}
}

// HandleMouseMovement updates yaw and pitch from cursor motion.
func (c *FollowCamera) HandleMouseMovement(w *glfw.Window, xpos, ypos float64) {
	if c.firstMouse {
		c.lastMouseX = xpos
		c.lastMouseY = ypos
		c.firstMouse = false
		return
	}

	xoffset := xpos - c.lastMouseX
	yoffset := ypos - c.lastMouseY
	c.lastMouseX = xpos
	c.lastMouseY = ypos

	sensitivity := 0.15
	c.Yaw += xoffset * sensitivity
	c.Pitch += yoffset * sensitivity

	// Keep the camera above the surface and off the zenith.
	if c.Pitch > 80 {
		c.Pitch = 80
	}
	if c.Pitch < 3 {
		c.Pitch = 3
	}
}

// HandleScroll zooms the orbit distance.
func (c *FollowCamera) HandleScroll(yoffset float64) {
	c.Distance -= float32(yoffset) * 1.5
	if c.Distance < 5 {
		c.Distance = 5
	}
	if c.Distance > 60 {
		c.Distance = 60
	}
}

// Eye returns the camera position orbiting the given target.
func (c *FollowCamera) Eye(target mgl32.Vec3) mgl32.Vec3 {
	yaw := c.Yaw * math.Pi / 180
	pitch := c.Pitch * math.Pi / 180
	horiz := float64(c.Distance) * math.Cos(pitch)
	return target.Add(mgl32.Vec3{
		float32(horiz * math.Cos(yaw)),
		float32(float64(c.Distance) * math.Sin(pitch)),
		float32(horiz * math.Sin(yaw)),
	})
}

// ViewMatrix returns the look-at matrix toward the target.
func (c *FollowCamera) ViewMatrix(target mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(target), target, mgl32.Vec3{0, 1, 0})
}
