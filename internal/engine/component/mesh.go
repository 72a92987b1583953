// Package component holds the plain data records an entity can be built
// from. Records carry no references to each other; the scene stores them.
package component

import (
	"github.com/LeDaffy/FlappyClone/internal/engine/primitive"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// Mesh is local geometry plus the rigid/scale transform placing it in the
// world. Indices are a triangle list local to this mesh, starting at 0.
type Mesh struct {
	Vertices []primitive.Vertex
	Indices  []uint32

	Translation math.Vec3
	Rotation    math.Quat
	Scale       math.Vec3
}

// NewMesh wraps geometry with an identity transform.
func NewMesh(vertices []primitive.Vertex, indices []uint32) Mesh {
	return Mesh{
		Vertices: vertices,
		Indices:  indices,
		Rotation: math.QuatIdentity(),
		Scale:    math.One(),
	}
}

// MeshFromQuad builds a mesh from a quad's corners and index list.
func MeshFromQuad(q primitive.Quad) Mesh {
	return NewMesh(q.VertexSlice(), q.Elements())
}

// MeshFromCube builds a mesh from a cube's 24 face vertices.
func MeshFromCube(c primitive.Cube) Mesh {
	return NewMesh(c.Vertices(), c.Elements())
}

// TransformPoint places a local position in the world: rotation first, then
// scale, then translation.
func (m *Mesh) TransformPoint(p math.Vec3) math.Vec3 {
	return m.Rotation.Rotate(p).Mul(m.Scale).Add(m.Translation)
}

// TransformedVertices returns a fresh copy of the vertices in world space with
// the vertical texture coordinate flipped. The mesh is not modified, so the
// result depends only on the stored transform and vertices.
func (m *Mesh) TransformedVertices() []primitive.Vertex {
	return m.AppendTransformed(make([]primitive.Vertex, 0, len(m.Vertices)))
}

// AppendTransformed appends the world-space vertices to dst. Only positions
// are transformed; normals are copied as is and stay in mesh-local space.
func (m *Mesh) AppendTransformed(dst []primitive.Vertex) []primitive.Vertex {
	for _, v := range m.Vertices {
		v.Position = m.TransformPoint(v.Position)
		v.UV = v.UV.FlipV()
		dst = append(dst, v)
	}
	return dst
}

// VertexCount returns the number of untransformed vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}
