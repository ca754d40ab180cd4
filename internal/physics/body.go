package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Gravity magnitude used by both the integrator and the buoyancy force.
	Gravity = 9.82

	// inertiaFactor approximates the hull's moment of inertia as a scalar
	// multiple of mass. Good enough for a single-body scene.
	inertiaFactor = 0.8
)

// RigidBody is the simulated boat body: linear and angular state plus force
// and torque accumulators drained by Integrate once per physics step.
type RigidBody struct {
	Position        mgl32.Vec3
	Velocity        mgl32.Vec3
	Orientation     mgl32.Quat
	AngularVelocity mgl32.Vec3

	Mass           float32
	HullHalfHeight float32 // half the vertical hull extent, for submersion depth

	forceAccum  mgl32.Vec3
	torqueAccum mgl32.Vec3
}

// NewRigidBody creates a body at rest at the origin with identity orientation.
func NewRigidBody(mass, hullHalfHeight float32) *RigidBody {
	return &RigidBody{
		Orientation:    mgl32.QuatIdent(),
		Mass:           mass,
		HullHalfHeight: hullHalfHeight,
	}
}

// HullHeight returns the full vertical extent of the hull.
func (b *RigidBody) HullHeight() float32 {
	return 2 * b.HullHalfHeight
}

// ApplyForce accumulates a force applied at a world-space point. Off-center
// application contributes torque.
func (b *RigidBody) ApplyForce(force, worldPoint mgl32.Vec3) {
	b.forceAccum = b.forceAccum.Add(force)
	arm := worldPoint.Sub(b.Position)
	b.torqueAccum = b.torqueAccum.Add(arm.Cross(force))
}

// ApplyForceAtCenter accumulates a force through the center of mass.
func (b *RigidBody) ApplyForceAtCenter(force mgl32.Vec3) {
	b.forceAccum = b.forceAccum.Add(force)
}

// ApplyTorque accumulates a pure torque.
func (b *RigidBody) ApplyTorque(torque mgl32.Vec3) {
	b.torqueAccum = b.torqueAccum.Add(torque)
}

// Forward returns the body's forward axis (-Z in body space).
func (b *RigidBody) Forward() mgl32.Vec3 {
	return b.Orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Up returns the body's up axis.
func (b *RigidBody) Up() mgl32.Vec3 {
	return b.Orientation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Right returns the body's right axis.
func (b *RigidBody) Right() mgl32.Vec3 {
	return b.Orientation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Integrate advances the body one step with semi-implicit Euler and drains
// the accumulators. Gravity is applied here, not by callers.
func (b *RigidBody) Integrate(dt float32) {
	accel := b.forceAccum.Mul(1 / b.Mass)
	accel = accel.Add(mgl32.Vec3{0, -Gravity, 0})
	b.Velocity = b.Velocity.Add(accel.Mul(dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	angAccel := b.torqueAccum.Mul(1 / (b.Mass * inertiaFactor))
	b.AngularVelocity = b.AngularVelocity.Add(angAccel.Mul(dt))

	// q' = q + dt/2 * (0, w) * q, renormalized.
	omega := mgl32.Quat{W: 0, V: b.AngularVelocity}
	dq := omega.Mul(b.Orientation)
	b.Orientation = mgl32.Quat{
		W: b.Orientation.W + 0.5*dt*dq.W,
		V: b.Orientation.V.Add(dq.V.Mul(0.5 * dt)),
	}.Normalize()

	b.forceAccum = mgl32.Vec3{}
	b.torqueAccum = mgl32.Vec3{}
}
