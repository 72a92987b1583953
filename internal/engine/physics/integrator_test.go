package physics

import (
	"testing"

	"github.com/LeDaffy/FlappyClone/internal/engine/component"
	"github.com/LeDaffy/FlappyClone/internal/engine/primitive"
	"github.com/LeDaffy/FlappyClone/internal/engine/scene"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

func newMover(s *scene.Scene, v, a math.Vec3) *Body {
	e := scene.NewEntity()
	e.AddMesh(s, component.MeshFromQuad(primitive.Square()))
	e.AddVelocity(s, v)
	e.AddAcceleration(s, a)
	return NewBody(e)
}

func TestStepPerFrame(t *testing.T) {
	s := scene.New()
	b := newMover(s, math.Vec3{Z: 2}, math.Vec3{Z: -0.5})
	in := NewIntegrator(DefaultConfig())

	in.Step(s, b, 0.5)

	// velocity 2 + (-0.5) = 1.5, then translation += 1.5 * 0.5
	if got := b.Entity.MustVelocity(s).Vector.Z; got != 1.5 {
		t.Errorf("velocity z = %v, want 1.5", got)
	}
	if got := b.Entity.MustMesh(s).Translation.Z; got != 0.75 {
		t.Errorf("translation z = %v, want 0.75", got)
	}
}

func TestStepScaled(t *testing.T) {
	s := scene.New()
	b := newMover(s, math.Vec3{Z: 2}, math.Vec3{Z: -0.5})
	cfg := DefaultConfig()
	cfg.Mode = Scaled
	in := NewIntegrator(cfg)

	in.Step(s, b, 0.5)

	if got := b.Entity.MustVelocity(s).Vector.Z; got != 1.75 {
		t.Errorf("velocity z = %v, want 1.75", got)
	}
	if got := b.Entity.MustMesh(s).Translation.Z; got != 0.875 {
		t.Errorf("translation z = %v, want 0.875", got)
	}
}

func TestStepDeterministic(t *testing.T) {
	dts := []float32{0.016, 0.017, 0.0165, 0.02, 0.001, 0.1, 0}
	run := func() math.Vec3 {
		s := scene.New()
		b := newMover(s, math.Vec3{X: 1, Y: -3, Z: 2}, math.Vec3{X: 0.01, Z: -0.17})
		in := NewIntegrator(DefaultConfig())
		for _, dt := range dts {
			in.Step(s, b, dt)
		}
		return b.Entity.MustMesh(s).Translation
	}
	first := run()
	for i := 0; i < 3; i++ {
		if got := run(); got != first {
			t.Fatalf("run %d = %v, first run = %v", i, got, first)
		}
	}
}

func TestStepZeroAndNegativeDt(t *testing.T) {
	s := scene.New()
	b := newMover(s, math.Vec3{X: 5}, math.Vec3{})
	in := NewIntegrator(DefaultConfig())

	in.Step(s, b, 0)
	in.Step(s, b, -1)
	if got := b.Entity.MustMesh(s).Translation; got != (math.Vec3{}) {
		t.Errorf("translation = %v, want zero", got)
	}
}

func TestStepLargeDt(t *testing.T) {
	s := scene.New()
	b := newMover(s, math.Vec3{X: 1}, math.Vec3{})
	in := NewIntegrator(DefaultConfig())
	in.Step(s, b, 1e6)
	if got := b.Entity.MustMesh(s).Translation.X; got != 1e6 {
		t.Errorf("translation x = %v, want 1e6", got)
	}
}

func TestBoundedAngle(t *testing.T) {
	s := scene.New()
	e := scene.NewEntity()
	e.AddMesh(s, component.MeshFromQuad(primitive.Square()))
	e.AddAngularVelocity(s, math.Radians(30))
	e.AddAngularAcceleration(s, math.Radians(5))
	b := NewBody(e)
	in := NewIntegrator(DefaultConfig())

	for i := 0; i < 200; i++ {
		in.Step(s, b, 0.1)
	}
	if b.Angle != math.Radians(90) {
		t.Fatalf("angle = %v, want exactly %v", b.Angle, math.Radians(90))
	}

	e.MustAngularVelocity(s).Rate = -1000
	e.MustAngularAcceleration(s).Rate = 0
	in.Step(s, b, 1)
	if b.Angle != -math.Radians(90) {
		t.Fatalf("angle = %v, want exactly %v", b.Angle, -math.Radians(90))
	}
}

func TestUnboundedAngle(t *testing.T) {
	s := scene.New()
	e := scene.NewEntity()
	e.AddAngularVelocity(s, 10)
	b := NewBody(e)
	in := NewIntegrator(Config{Axis: math.Vec3{Y: 1}})
	in.Step(s, b, 1)
	if b.Angle != 10 {
		t.Errorf("angle = %v, want 10", b.Angle)
	}
}

func TestRotationFollowsAngle(t *testing.T) {
	s := scene.New()
	e := scene.NewEntity()
	e.AddMesh(s, component.MeshFromQuad(primitive.Square()))
	e.AddAngularVelocity(s, math.Pi/4)
	b := NewBody(e)
	in := NewIntegrator(DefaultConfig())

	in.Step(s, b, 1)

	want := math.QuatFromAxisAngle(math.Vec3{Y: 1}, math.Pi/4)
	if got := e.MustMesh(s).Rotation; got != want {
		t.Errorf("rotation = %v, want %v", got, want)
	}
}

func TestAngleSetByCaller(t *testing.T) {
	s := scene.New()
	e := scene.NewEntity()
	e.AddMesh(s, component.MeshFromQuad(primitive.Square()))
	e.AddAngularVelocity(s, 0)
	b := NewBody(e)
	b.Angle = math.Radians(-45)
	in := NewIntegrator(DefaultConfig())

	in.Step(s, b, 0.016)

	want := math.QuatFromAxisAngle(math.Vec3{Y: 1}, math.Radians(-45))
	if got := e.MustMesh(s).Rotation; got != want {
		t.Errorf("rotation = %v, want %v", got, want)
	}
}

func TestStepSkipsMissingComponents(t *testing.T) {
	s := scene.New()
	in := NewIntegrator(DefaultConfig())

	// Velocity without mesh: velocity still integrates.
	e := scene.NewEntity()
	e.AddVelocity(s, math.Vec3{X: 1})
	e.AddAcceleration(s, math.Vec3{X: 1})
	in.Step(s, NewBody(e), 1)
	if got := e.MustVelocity(s).Vector.X; got != 2 {
		t.Errorf("velocity x = %v, want 2", got)
	}

	// Mesh without motion: untouched.
	still := scene.NewEntity()
	still.AddMesh(s, component.MeshFromQuad(primitive.Square()))
	in.Step(s, NewBody(still), 1)
	m := still.MustMesh(s)
	if m.Translation != (math.Vec3{}) || m.Rotation != math.QuatIdentity() {
		t.Errorf("static mesh changed: %+v", m)
	}

	// Acceleration without velocity is ignored.
	lone := scene.NewEntity()
	lone.AddMesh(s, component.MeshFromQuad(primitive.Square()))
	lone.AddAcceleration(s, math.Vec3{X: 9})
	in.Step(s, NewBody(lone), 1)
	if lone.MustMesh(s).Translation != (math.Vec3{}) {
		t.Error("acceleration alone moved the mesh")
	}
}

func TestStepAll(t *testing.T) {
	s := scene.New()
	a := newMover(s, math.Vec3{X: 1}, math.Vec3{})
	b := newMover(s, math.Vec3{X: -1}, math.Vec3{})
	in := NewIntegrator(DefaultConfig())
	in.StepAll(s, []*Body{a, b}, 2)
	if a.Entity.MustMesh(s).Translation.X != 2 || b.Entity.MustMesh(s).Translation.X != -2 {
		t.Error("StepAll did not step every body")
	}
}

func TestParseAccelerationMode(t *testing.T) {
	tests := []struct {
		in      string
		want    AccelerationMode
		wantErr bool
	}{
		{"", PerFrame, false},
		{"per_frame", PerFrame, false},
		{"scaled", Scaled, false},
		{"bogus", PerFrame, true},
	}
	for _, tt := range tests {
		got, err := ParseAccelerationMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAccelerationMode(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseAccelerationMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}
