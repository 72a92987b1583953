package scene

import (
	"strings"
	"testing"

	"github.com/LeDaffy/FlappyClone/internal/engine/component"
	"github.com/LeDaffy/FlappyClone/internal/engine/primitive"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", contains)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, contains) {
			t.Fatalf("panic %q does not contain %q", msg, contains)
		}
	}()
	fn()
}

func TestNewSceneEmpty(t *testing.T) {
	s := New()
	for k := KindMesh; k < kindCount; k++ {
		if n := s.Len(k); n != 0 {
			t.Errorf("Len(%s) = %d, want 0", k, n)
		}
	}
	if len(s.Meshes()) != 0 {
		t.Error("Meshes() should be empty")
	}
}

func TestPushReturnsLastIndex(t *testing.T) {
	s := New()
	for want := 0; want < 5; want++ {
		got := s.PushVelocity(component.Velocity{Vector: math.Vec3{X: float32(want)}})
		if got != want {
			t.Fatalf("PushVelocity #%d returned %d", want, got)
		}
	}
	if s.Len(KindVelocity) != 5 {
		t.Errorf("Len = %d, want 5", s.Len(KindVelocity))
	}
	if s.Len(KindMesh) != 0 {
		t.Error("arenas must be independent")
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	s := New()
	s.PushMesh(component.NewMesh(nil, nil))
	expectPanic(t, "mesh index 1 out of range", func() { s.Mesh(1) })
	expectPanic(t, "velocity index 0 out of range", func() { s.Velocity(0) })
	expectPanic(t, "angular acceleration index -1", func() { s.AngularAcceleration(-1) })
}

func TestIndexStability(t *testing.T) {
	s := New()
	entities := make([]*Entity, 100)
	for i := range entities {
		e := NewEntity()
		e.AddVelocity(s, math.Vec3{X: float32(i)})
		e.AddAngularVelocity(s, float32(i))
		entities[i] = e
	}

	seen := map[int]bool{}
	for i, e := range entities {
		idx, ok := e.VelocityIndex()
		if !ok {
			t.Fatalf("entity %d lost its velocity", i)
		}
		if seen[idx] {
			t.Fatalf("index %d handed out twice", idx)
		}
		seen[idx] = true
		if got := e.Velocity(s).Vector.X; got != float32(i) {
			t.Errorf("entity %d resolves velocity %v after growth", i, got)
		}
		if got := e.AngularVelocity(s).Rate; got != float32(i) {
			t.Errorf("entity %d resolves angular velocity %v", i, got)
		}
	}
}

func TestEntityAbsent(t *testing.T) {
	s := New()
	e := NewEntity()
	if e.Velocity(s) != nil {
		t.Error("Velocity() on fresh entity should be nil")
	}
	if _, ok := e.VelocityIndex(); ok {
		t.Error("VelocityIndex() on fresh entity should report absent")
	}
	if e.Mesh(s) != nil || e.Acceleration(s) != nil ||
		e.AngularVelocity(s) != nil || e.AngularAcceleration(s) != nil {
		t.Error("fresh entity should resolve no components")
	}
	if e.Has(KindMesh) {
		t.Error("Has(mesh) on fresh entity")
	}

	var zero Entity
	if zero.Mesh(s) != nil {
		t.Error("zero-value entity should have no mesh")
	}
}

func TestMustPanicsWhenAbsent(t *testing.T) {
	s := New()
	e := NewEntity()
	expectPanic(t, "no velocity component", func() { e.MustVelocity(s) })
	expectPanic(t, "no mesh component", func() { e.MustMesh(s) })
}

func TestEntityMutationVisible(t *testing.T) {
	s := New()
	e := NewEntity()
	e.AddVelocity(s, math.Vec3{Z: 2})
	e.MustVelocity(s).Vector.Z = 425
	idx, _ := e.VelocityIndex()
	if got := s.VelocityAt(idx).Vector.Z; got != 425 {
		t.Errorf("scene sees velocity z = %v, want 425", got)
	}
}

func TestDoubleAddOverwritesInPlace(t *testing.T) {
	s := New()
	e := NewEntity()
	e.AddAcceleration(s, math.Vec3{Z: -1})
	first, _ := e.AccelerationIndex()

	e.AddAcceleration(s, math.Vec3{Z: -2})
	second, _ := e.AccelerationIndex()

	if first != second {
		t.Errorf("index changed from %d to %d", first, second)
	}
	if s.Len(KindAcceleration) != 1 {
		t.Errorf("Len = %d, want 1 (no orphaned record)", s.Len(KindAcceleration))
	}
	if got := e.Acceleration(s).Vector.Z; got != -2 {
		t.Errorf("acceleration z = %v, want -2", got)
	}
}

func TestEntitiesDoNotShareSlots(t *testing.T) {
	s := New()
	a, b := NewEntity(), NewEntity()
	a.AddMesh(s, component.MeshFromQuad(primitive.Square()))
	b.AddMesh(s, component.MeshFromQuad(primitive.Square()))

	a.MustMesh(s).Translation = math.Vec3{X: 3}
	if b.MustMesh(s).Translation.X != 0 {
		t.Error("mutating a's mesh changed b's")
	}
	ia, _ := a.MeshIndex()
	ib, _ := b.MeshIndex()
	if ia != 0 || ib != 1 {
		t.Errorf("mesh indices = %d, %d; want 0, 1", ia, ib)
	}
	if s.MeshAt(ia).Translation.X != 3 {
		t.Error("MeshAt should reflect mutation through the entity")
	}
}

func TestAngularAccelerationIndexUsesOwnArena(t *testing.T) {
	s := New()
	// Pushes into other arenas must not influence the angular index.
	other := NewEntity()
	other.AddVelocity(s, math.Vec3{})
	other.AddVelocity(s, math.Vec3{})
	other.AddAcceleration(s, math.Vec3{})

	e := NewEntity()
	e.AddAngularVelocity(s, 1)
	e.AddAngularAcceleration(s, 0.5)
	if i, _ := e.AngularVelocityIndex(); i != 0 {
		t.Errorf("angular velocity index = %d, want 0", i)
	}
	if i, _ := e.AngularAccelerationIndex(); i != 0 {
		t.Errorf("angular acceleration index = %d, want 0", i)
	}
}

func TestKindString(t *testing.T) {
	if KindAngularVelocity.String() != "angular velocity" {
		t.Errorf("String() = %q", KindAngularVelocity.String())
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("String() for bad kind = %q", Kind(42).String())
	}
}
