// Package scene owns all component storage and the entity handles that
// index into it.
//
// Components live in one append-only arena per kind. An Entity never points
// at component data; it records an index per kind and resolves it through the
// Scene on every access, so arena growth never leaves a dangling reference.
package scene

import (
	"github.com/LeDaffy/FlappyClone/internal/engine/component"
)

// Kind identifies a component arena.
type Kind int

const (
	KindMesh Kind = iota
	KindVelocity
	KindAcceleration
	KindAngularVelocity
	KindAngularAcceleration
	kindCount
)

var kindNames = [kindCount]string{
	KindMesh:                "mesh",
	KindVelocity:            "velocity",
	KindAcceleration:        "acceleration",
	KindAngularVelocity:     "angular velocity",
	KindAngularAcceleration: "angular acceleration",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Scene is the sole owner and allocator of component records.
type Scene struct {
	meshes               arena[component.Mesh]
	velocities           arena[component.Velocity]
	accelerations        arena[component.Acceleration]
	angularVelocities    arena[component.AngularVelocity]
	angularAccelerations arena[component.AngularAcceleration]
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		meshes:               arena[component.Mesh]{kind: KindMesh},
		velocities:           arena[component.Velocity]{kind: KindVelocity},
		accelerations:        arena[component.Acceleration]{kind: KindAcceleration},
		angularVelocities:    arena[component.AngularVelocity]{kind: KindAngularVelocity},
		angularAccelerations: arena[component.AngularAcceleration]{kind: KindAngularAcceleration},
	}
}

// Len returns the number of records stored for kind.
func (s *Scene) Len(kind Kind) int {
	switch kind {
	case KindMesh:
		return s.meshes.len()
	case KindVelocity:
		return s.velocities.len()
	case KindAcceleration:
		return s.accelerations.len()
	case KindAngularVelocity:
		return s.angularVelocities.len()
	case KindAngularAcceleration:
		return s.angularAccelerations.len()
	}
	return 0
}

// Meshes returns the mesh arena in insertion order. The slice aliases scene
// storage and is only valid until the next PushMesh.
func (s *Scene) Meshes() []component.Mesh {
	return s.meshes.items
}

// PushMesh appends m and returns its index.
func (s *Scene) PushMesh(m component.Mesh) int { return s.meshes.push(m) }

// Mesh returns the mesh at i. It panics if i is out of range.
func (s *Scene) Mesh(i int) *component.Mesh { return s.meshes.at(i) }

// MeshAt returns a copy of the mesh at i.
func (s *Scene) MeshAt(i int) component.Mesh { return *s.meshes.at(i) }

// PushVelocity appends v and returns its index.
func (s *Scene) PushVelocity(v component.Velocity) int { return s.velocities.push(v) }

// Velocity returns the velocity at i. It panics if i is out of range.
func (s *Scene) Velocity(i int) *component.Velocity { return s.velocities.at(i) }

// VelocityAt returns a copy of the velocity at i.
func (s *Scene) VelocityAt(i int) component.Velocity { return *s.velocities.at(i) }

// PushAcceleration appends a and returns its index.
func (s *Scene) PushAcceleration(a component.Acceleration) int { return s.accelerations.push(a) }

// Acceleration returns the acceleration at i. It panics if i is out of range.
func (s *Scene) Acceleration(i int) *component.Acceleration { return s.accelerations.at(i) }

// AccelerationAt returns a copy of the acceleration at i.
func (s *Scene) AccelerationAt(i int) component.Acceleration { return *s.accelerations.at(i) }

// PushAngularVelocity appends w and returns its index.
func (s *Scene) PushAngularVelocity(w component.AngularVelocity) int {
	return s.angularVelocities.push(w)
}

// AngularVelocity returns the angular velocity at i. It panics if i is out of range.
func (s *Scene) AngularVelocity(i int) *component.AngularVelocity {
	return s.angularVelocities.at(i)
}

// AngularVelocityAt returns a copy of the angular velocity at i.
func (s *Scene) AngularVelocityAt(i int) component.AngularVelocity {
	return *s.angularVelocities.at(i)
}

// PushAngularAcceleration appends a and returns its index.
func (s *Scene) PushAngularAcceleration(a component.AngularAcceleration) int {
	return s.angularAccelerations.push(a)
}

// AngularAcceleration returns the angular acceleration at i. It panics if i is out of range.
func (s *Scene) AngularAcceleration(i int) *component.AngularAcceleration {
	return s.angularAccelerations.at(i)
}

// AngularAccelerationAt returns a copy of the angular acceleration at i.
func (s *Scene) AngularAccelerationAt(i int) component.AngularAcceleration {
	return *s.angularAccelerations.at(i)
}
