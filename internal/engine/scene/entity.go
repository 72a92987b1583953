package scene

import (
	"fmt"

	"github.com/LeDaffy/FlappyClone/internal/engine/component"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// slot is an optional arena index. The zero value is unset.
type slot struct {
	index int
	ok    bool
}

// Entity aggregates at most one component of each kind by index. It owns the
// association only; the records belong to the Scene. The zero value is an
// entity with no components.
//
// Adding a kind that is already bound overwrites the bound record in place.
// No second record is pushed, so the entity's index for a kind never changes
// once set and the arena never accumulates unreferenced records.
type Entity struct {
	slots [kindCount]slot
}

// NewEntity returns an entity with no components.
func NewEntity() *Entity {
	return &Entity{}
}

// Has reports whether the entity has a component of kind.
func (e *Entity) Has(kind Kind) bool {
	return e.slots[kind].ok
}

func (e *Entity) index(kind Kind) (int, bool) {
	sl := e.slots[kind]
	return sl.index, sl.ok
}

func (e *Entity) bind(kind Kind, index int) {
	e.slots[kind] = slot{index: index, ok: true}
}

func missing(kind Kind) string {
	return fmt.Sprintf("scene: entity has no %s component", kind)
}

// AddMesh binds m to the entity.
func (e *Entity) AddMesh(s *Scene, m component.Mesh) {
	if i, ok := e.index(KindMesh); ok {
		*s.Mesh(i) = m
		return
	}
	e.bind(KindMesh, s.PushMesh(m))
}

// Mesh resolves the entity's mesh, or nil if it has none.
func (e *Entity) Mesh(s *Scene) *component.Mesh {
	if i, ok := e.index(KindMesh); ok {
		return s.Mesh(i)
	}
	return nil
}

// MustMesh is like Mesh but panics if the entity has no mesh.
func (e *Entity) MustMesh(s *Scene) *component.Mesh {
	if m := e.Mesh(s); m != nil {
		return m
	}
	panic(missing(KindMesh))
}

// MeshIndex returns the raw arena index of the entity's mesh.
func (e *Entity) MeshIndex() (int, bool) { return e.index(KindMesh) }

// AddVelocity binds a velocity to the entity.
func (e *Entity) AddVelocity(s *Scene, v math.Vec3) {
	rec := component.Velocity{Vector: v}
	if i, ok := e.index(KindVelocity); ok {
		*s.Velocity(i) = rec
		return
	}
	e.bind(KindVelocity, s.PushVelocity(rec))
}

// Velocity resolves the entity's velocity, or nil if it has none.
func (e *Entity) Velocity(s *Scene) *component.Velocity {
	if i, ok := e.index(KindVelocity); ok {
		return s.Velocity(i)
	}
	return nil
}

// MustVelocity is like Velocity but panics if the entity has none.
func (e *Entity) MustVelocity(s *Scene) *component.Velocity {
	if v := e.Velocity(s); v != nil {
		return v
	}
	panic(missing(KindVelocity))
}

// VelocityIndex returns the raw arena index of the entity's velocity.
func (e *Entity) VelocityIndex() (int, bool) { return e.index(KindVelocity) }

// AddAcceleration binds an acceleration to the entity.
func (e *Entity) AddAcceleration(s *Scene, a math.Vec3) {
	rec := component.Acceleration{Vector: a}
	if i, ok := e.index(KindAcceleration); ok {
		*s.Acceleration(i) = rec
		return
	}
	e.bind(KindAcceleration, s.PushAcceleration(rec))
}

// Acceleration resolves the entity's acceleration, or nil if it has none.
func (e *Entity) Acceleration(s *Scene) *component.Acceleration {
	if i, ok := e.index(KindAcceleration); ok {
		return s.Acceleration(i)
	}
	return nil
}

// MustAcceleration is like Acceleration but panics if the entity has none.
func (e *Entity) MustAcceleration(s *Scene) *component.Acceleration {
	if a := e.Acceleration(s); a != nil {
		return a
	}
	panic(missing(KindAcceleration))
}

// AccelerationIndex returns the raw arena index of the entity's acceleration.
func (e *Entity) AccelerationIndex() (int, bool) { return e.index(KindAcceleration) }

// AddAngularVelocity binds an angular velocity (radians/s) to the entity.
func (e *Entity) AddAngularVelocity(s *Scene, rate float32) {
	rec := component.AngularVelocity{Rate: rate}
	if i, ok := e.index(KindAngularVelocity); ok {
		*s.AngularVelocity(i) = rec
		return
	}
	e.bind(KindAngularVelocity, s.PushAngularVelocity(rec))
}

// AngularVelocity resolves the entity's angular velocity, or nil if it has none.
func (e *Entity) AngularVelocity(s *Scene) *component.AngularVelocity {
	if i, ok := e.index(KindAngularVelocity); ok {
		return s.AngularVelocity(i)
	}
	return nil
}

// MustAngularVelocity is like AngularVelocity but panics if the entity has none.
func (e *Entity) MustAngularVelocity(s *Scene) *component.AngularVelocity {
	if w := e.AngularVelocity(s); w != nil {
		return w
	}
	panic(missing(KindAngularVelocity))
}

// AngularVelocityIndex returns the raw arena index of the entity's angular velocity.
func (e *Entity) AngularVelocityIndex() (int, bool) { return e.index(KindAngularVelocity) }

// AddAngularAcceleration binds an angular acceleration to the entity.
func (e *Entity) AddAngularAcceleration(s *Scene, rate float32) {
	rec := component.AngularAcceleration{Rate: rate}
	if i, ok := e.index(KindAngularAcceleration); ok {
		*s.AngularAcceleration(i) = rec
		return
	}
	e.bind(KindAngularAcceleration, s.PushAngularAcceleration(rec))
}

// AngularAcceleration resolves the entity's angular acceleration, or nil if it has none.
func (e *Entity) AngularAcceleration(s *Scene) *component.AngularAcceleration {
	if i, ok := e.index(KindAngularAcceleration); ok {
		return s.AngularAcceleration(i)
	}
	return nil
}

// MustAngularAcceleration is like AngularAcceleration but panics if the entity has none.
func (e *Entity) MustAngularAcceleration(s *Scene) *component.AngularAcceleration {
	if a := e.AngularAcceleration(s); a != nil {
		return a
	}
	panic(missing(KindAngularAcceleration))
}

// AngularAccelerationIndex returns the raw arena index of the entity's angular acceleration.
func (e *Entity) AngularAccelerationIndex() (int, bool) {
	return e.index(KindAngularAcceleration)
}
