package component

import "github.com/LeDaffy/FlappyClone/pkg/math"

// Velocity is linear velocity in world units per second.
type Velocity struct {
	Vector math.Vec3
}

// Acceleration is a linear velocity increment. Whether it is applied per
// frame or per second is decided by the integrator.
type Acceleration struct {
	Vector math.Vec3
}

// AngularVelocity is a rotation rate about the integrator's axis, radians/s.
type AngularVelocity struct {
	Rate float32
}

// AngularAcceleration is an increment to AngularVelocity.
type AngularAcceleration struct {
	Rate float32
}
