package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func almostEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestIntegrateFreeFall(t *testing.T) {
	body := NewRigidBody(1200, 0.5)
	dt := float32(1.0 / 120.0)

	body.Integrate(dt)
	if want := -Gravity * dt; !almostEqual(body.Velocity.Y(), float32(want), 1e-6) {
		t.Errorf("velocity.y after one step = %v, want %v", body.Velocity.Y(), want)
	}
	if body.Velocity.X() != 0 || body.Velocity.Z() != 0 {
		t.Errorf("lateral velocity appeared in free fall: %v", body.Velocity)
	}

	for i := 0; i < 119; i++ {
		body.Integrate(dt)
	}
	// After a second of free fall, velocity ~ -g.
	if !almostEqual(body.Velocity.Y(), -Gravity, 0.01) {
		t.Errorf("velocity.y after 1s = %v, want about %v", body.Velocity.Y(), -Gravity)
	}
}

func TestApplyForceAtCenterAcceleration(t *testing.T) {
	body := NewRigidBody(100, 0.5)
	dt := float32(0.01)

	// Cancel gravity and push forward.
	body.ApplyForceAtCenter(mgl32.Vec3{0, 100 * Gravity, 0})
	body.ApplyForceAtCenter(mgl32.Vec3{200, 0, 0})
	body.Integrate(dt)

	if want := float32(200.0/100.0) * dt; !almostEqual(body.Velocity.X(), want, 1e-5) {
		t.Errorf("velocity.x = %v, want %v", body.Velocity.X(), want)
	}
	if !almostEqual(body.Velocity.Y(), 0, 1e-5) {
		t.Errorf("velocity.y = %v, want 0 with gravity cancelled", body.Velocity.Y())
	}
}

func TestApplyForceOffCenterAddsTorque(t *testing.T) {
	body := NewRigidBody(100, 0.5)

	// Forward push on the right side should yaw the body.
	body.ApplyForce(mgl32.Vec3{0, 0, -50}, body.Position.Add(mgl32.Vec3{2, 0, 0}))
	body.Integrate(0.01)

	if body.AngularVelocity.Y() == 0 {
		t.Error("off-center force produced no yaw")
	}
}

func TestApplyTorqueSpinsBody(t *testing.T) {
	body := NewRigidBody(100, 0.5)
	body.ApplyTorque(mgl32.Vec3{0, 80, 0})
	body.Integrate(0.01)

	if body.AngularVelocity.Y() <= 0 {
		t.Errorf("AngularVelocity.Y() = %v, want > 0", body.AngularVelocity.Y())
	}

	// Accumulators drain: a further step without torque must not keep
	// accelerating the spin.
	w := body.AngularVelocity.Y()
	body.Integrate(0.01)
	if body.AngularVelocity.Y() != w {
		t.Errorf("angular velocity changed without torque: %v -> %v", w, body.AngularVelocity.Y())
	}
}

func TestOrientationStaysNormalized(t *testing.T) {
	body := NewRigidBody(100, 0.5)
	body.AngularVelocity = mgl32.Vec3{1, 2, 3}
	for i := 0; i < 1000; i++ {
		body.Integrate(1.0 / 120.0)
	}
	if n := body.Orientation.Norm(); !almostEqual(n, 1, 1e-4) {
		t.Errorf("orientation norm drifted to %v", n)
	}
}

func TestBodyAxesOrthogonal(t *testing.T) {
	body := NewRigidBody(100, 0.5)
	body.AngularVelocity = mgl32.Vec3{0.5, 1.5, -0.7}
	for i := 0; i < 200; i++ {
		body.Integrate(1.0 / 120.0)
	}
	f, u, r := body.Forward(), body.Up(), body.Right()
	if !almostEqual(f.Dot(u), 0, 1e-4) || !almostEqual(f.Dot(r), 0, 1e-4) || !almostEqual(u.Dot(r), 0, 1e-4) {
		t.Errorf("body axes not orthogonal: f·u=%v f·r=%v u·r=%v", f.Dot(u), f.Dot(r), u.Dot(r))
	}
}
