// Package physics advances entity motion state once per frame and writes the
// result into each entity's mesh transform.
package physics

import (
	"fmt"

	"github.com/LeDaffy/FlappyClone/internal/engine/scene"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// AccelerationMode selects how acceleration feeds velocity.
type AccelerationMode int

const (
	// PerFrame adds acceleration to velocity once per step regardless of dt.
	// Motion therefore depends on frame rate.
	PerFrame AccelerationMode = iota
	// Scaled adds acceleration*dt, making motion frame-rate independent.
	Scaled
)

func (m AccelerationMode) String() string {
	switch m {
	case PerFrame:
		return "per_frame"
	case Scaled:
		return "scaled"
	}
	return fmt.Sprintf("AccelerationMode(%d)", int(m))
}

// ParseAccelerationMode parses the config spelling of a mode.
func ParseAccelerationMode(s string) (AccelerationMode, error) {
	switch s {
	case "", "per_frame":
		return PerFrame, nil
	case "scaled":
		return Scaled, nil
	}
	return PerFrame, fmt.Errorf("unknown acceleration mode %q", s)
}

// Config holds integrator settings.
type Config struct {
	Mode AccelerationMode
	// Axis is the single axis angular motion rotates about.
	Axis math.Vec3
	// MaxAngle bounds the accumulated angle to [-MaxAngle, MaxAngle] radians.
	// Zero or negative disables the bound.
	MaxAngle float32
}

// DefaultConfig is the stock game tuning: per-frame acceleration, pitch
// about Y, tilt limited to 90 degrees either way.
func DefaultConfig() Config {
	return Config{
		Mode:     PerFrame,
		Axis:     math.Vec3{Y: 1},
		MaxAngle: math.Radians(90),
	}
}

// Body is an entity under integration together with its accumulated
// rotation angle about the integrator axis.
type Body struct {
	Entity *scene.Entity
	Angle  float32
}

// NewBody wraps e with a zero angle.
func NewBody(e *scene.Entity) *Body {
	return &Body{Entity: e}
}

// Integrator steps bodies forward in time.
type Integrator struct {
	cfg Config
}

// NewIntegrator creates an integrator.
func NewIntegrator(cfg Config) *Integrator {
	return &Integrator{cfg: cfg}
}

// Config returns the integrator settings.
func (in *Integrator) Config() Config {
	return in.cfg
}

// increment scales a per-step increment according to the mode.
func (in *Integrator) increment(dt float32) float32 {
	if in.cfg.Mode == Scaled {
		return dt
	}
	return 1
}

// Step advances one body by dt seconds. Components the entity lacks are
// skipped. Negative dt is treated as zero.
//
// Order: velocity += acceleration; angular velocity += angular acceleration;
// angle += angular velocity*dt (clamped); mesh rotation from the angle;
// mesh translation += velocity*dt.
func (in *Integrator) Step(s *scene.Scene, b *Body, dt float32) {
	if dt < 0 {
		dt = 0
	}
	e := b.Entity
	k := in.increment(dt)

	vel := e.Velocity(s)
	if vel != nil {
		if acc := e.Acceleration(s); acc != nil {
			vel.Vector = vel.Vector.Add(acc.Vector.Scale(k))
		}
	}

	mesh := e.Mesh(s)

	if w := e.AngularVelocity(s); w != nil {
		if a := e.AngularAcceleration(s); a != nil {
			w.Rate += a.Rate * k
		}
		b.Angle = in.ClampAngle(b.Angle + w.Rate*dt)
		if mesh != nil {
			mesh.Rotation = math.QuatFromAxisAngle(in.cfg.Axis, b.Angle)
		}
	}

	if mesh != nil && vel != nil {
		mesh.Translation = mesh.Translation.Add(vel.Vector.Scale(dt))
	}
}

// StepAll steps every body in order.
func (in *Integrator) StepAll(s *scene.Scene, bodies []*Body, dt float32) {
	for _, b := range bodies {
		in.Step(s, b, dt)
	}
}

// ClampAngle bounds angle to the configured range.
func (in *Integrator) ClampAngle(angle float32) float32 {
	if in.cfg.MaxAngle <= 0 {
		return angle
	}
	return math.Clamp(angle, -in.cfg.MaxAngle, in.cfg.MaxAngle)
}
