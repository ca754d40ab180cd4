package boat

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"openwater/internal/physics"
	"openwater/internal/profiling"
)

const (
	MaxRudderAngle = 45.0 // degrees

	DefaultMass           = 1200.0
	DefaultHullHalfHeight = 0.5

	rudderRate   = 90.0 // degrees per second toward the helm input
	recenterRate = 45.0 // degrees per second back to center
	throttleRate = 0.8  // throttle units per second
)

// Boat is the steerable hull: one rigid body, helm state, and the buoyancy
// coupling that ties it to the wave surface.
type Boat struct {
	Body *physics.RigidBody

	coupling    *physics.Buoyancy
	rudderAngle float32 // degrees, [-MaxRudderAngle, MaxRudderAngle]
	throttle    float32 // [0, 1]
}

// New creates the default boat floating at the origin.
func New() *Boat {
	body := physics.NewRigidBody(DefaultMass, DefaultHullHalfHeight)
	body.Position = mgl32.Vec3{0, 1, 0}
	return &Boat{
		Body:     body,
		coupling: physics.NewBuoyancy(),
	}
}

// RudderAngle returns the rudder deflection in degrees.
func (b *Boat) RudderAngle() float32 {
	return b.rudderAngle
}

// SetRudderAngle sets the rudder deflection, clamped to [-45, 45] degrees.
func (b *Boat) SetRudderAngle(deg float32) {
	if deg < -MaxRudderAngle {
		deg = -MaxRudderAngle
	}
	if deg > MaxRudderAngle {
		deg = MaxRudderAngle
	}
	b.rudderAngle = deg
}

// Throttle returns the current throttle magnitude.
func (b *Boat) Throttle() float32 {
	return b.throttle
}

// SetThrottle sets the throttle, clamped to [0, 1].
func (b *Boat) SetThrottle(v float32) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	b.throttle = v
}

// Steer ramps the rudder toward full deflection in the given direction
// (-1 left, +1 right, 0 recenters).
func (b *Boat) Steer(direction float32, dt float64) {
	if direction != 0 {
		b.SetRudderAngle(b.rudderAngle + direction*float32(rudderRate*dt))
		return
	}
	// Recenter when the helm is released.
	step := float32(recenterRate * dt)
	switch {
	case b.rudderAngle > step:
		b.rudderAngle -= step
	case b.rudderAngle < -step:
		b.rudderAngle += step
	default:
		b.rudderAngle = 0
	}
}

// AdjustThrottle ramps the throttle up or down.
func (b *Boat) AdjustThrottle(direction float32, dt float64) {
	b.SetThrottle(b.throttle + direction*float32(throttleRate*dt))
}

// Step runs one fixed physics step: buoyancy and helm forces, then
// integration.
func (b *Boat) Step(field physics.HeightField, dt float32) {
	defer profiling.Track("physics.BoatStep")()
	b.coupling.Step(b.Body, field, physics.Controls{
		RudderAngle: b.rudderAngle,
		Throttle:    b.throttle,
	})
	b.Body.Integrate(dt)
}

// Speed returns the planar speed in m/s, for the HUD.
func (b *Boat) Speed() float64 {
	vx := float64(b.Body.Velocity.X())
	vz := float64(b.Body.Velocity.Z())
	return math.Sqrt(vx*vx + vz*vz)
}

// Heading returns the compass heading in degrees [0, 360).
func (b *Boat) Heading() float64 {
	f := b.Body.Forward()
	deg := math.Atan2(float64(f.X()), float64(-f.Z())) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
