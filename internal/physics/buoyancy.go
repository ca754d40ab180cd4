package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightField is the wave surface query the coupling samples each step.
type HeightField interface {
	Height(x, z float64) float64
}

// Controls carries the helm inputs sampled at the start of a physics step.
type Controls struct {
	RudderAngle float32 // degrees; the boat clamps to [-45, 45]
	Throttle    float32 // [0, 1]
}

// Buoyancy couples a rigid body to the wave surface with a single sample at
// the body center. One sample, not hull integration: accuracy degrades as
// hull size approaches the wave wavelength, which is a known limitation of
// this scene, not a bug.
type Buoyancy struct {
	Gain           float32 // scales the restoring force
	Damping        float32 // planar velocity damping while submerged
	StabilizerGain float32 // rights roll/pitch tilt while submerged
	AngularDamping float32 // bleeds angular velocity while submerged
	ThrustPower    float32 // newtons at full throttle
	SteeringGain   float32 // yaw torque per (m/s)^2 at full rudder
}

// NewBuoyancy returns a coupling tuned for the default hull.
func NewBuoyancy() *Buoyancy {
	return &Buoyancy{
		Gain:           1.6,
		Damping:        600,
		StabilizerGain: 4000,
		AngularDamping: 1200,
		ThrustPower:    9000,
		SteeringGain:   90,
	}
}

// Step samples the wave surface under the body and accumulates this step's
// forces. Integration is the caller's job.
func (bc *Buoyancy) Step(body *RigidBody, field HeightField, ctl Controls) {
	waterHeight := float32(field.Height(float64(body.Position.X()), float64(body.Position.Z())))
	bottomY := body.Position.Y() - body.HullHalfHeight

	if bottomY <= waterHeight {
		ratio := (waterHeight - bottomY) / body.HullHeight()
		if ratio > 1 {
			ratio = 1
		}

		// Restoring force through the center.
		body.ApplyForceAtCenter(mgl32.Vec3{0, body.Mass * Gravity * bc.Gain * ratio, 0})

		// Planar damping against horizontal velocity.
		body.ApplyForceAtCenter(mgl32.Vec3{
			-body.Velocity.X() * bc.Damping * ratio,
			0,
			-body.Velocity.Z() * bc.Damping * ratio,
		})

		// Stabilizing torque: rotate the hull's up axis back toward world up,
		// with damping so the single-point approximation cannot pump the roll.
		tilt := body.Up().Cross(mgl32.Vec3{0, 1, 0})
		body.ApplyTorque(tilt.Mul(bc.StabilizerGain * ratio))
		body.ApplyTorque(body.AngularVelocity.Mul(-bc.AngularDamping * ratio))
	}
	// Airborne: no buoyancy, no damping. Not an error.

	// Throttle and rudder apply regardless of submersion. Deliberate
	// simplification carried over from the source design.
	if ctl.Throttle != 0 {
		body.ApplyForceAtCenter(body.Forward().Mul(bc.ThrustPower * ctl.Throttle))
	}
	if ctl.RudderAngle != 0 {
		vx := body.Velocity.X()
		vz := body.Velocity.Z()
		speedSq := vx*vx + vz*vz
		yaw := -float32(math.Sin(float64(mgl32.DegToRad(ctl.RudderAngle)))) * bc.SteeringGain * speedSq
		body.ApplyTorque(mgl32.Vec3{0, yaw, 0})
	}
}
