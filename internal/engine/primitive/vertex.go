// Package primitive defines the vertex record shared by every mesh and the
// canonical shapes (triangle, quad, cube) built from it.
package primitive

import "github.com/LeDaffy/FlappyClone/pkg/math"

// FloatsPerVertex is the number of float32 values one vertex occupies in the
// flat GPU buffer: position(3) color(3) uv(2) normal(3).
const FloatsPerVertex = 11

// Attribute offsets, in floats, inside one packed vertex.
const (
	PositionOffset = 0
	ColorOffset    = 3
	UVOffset       = 6
	NormalOffset   = 8
)

// Vertex is a single mesh vertex. It is a plain value and is copied freely.
type Vertex struct {
	Position math.Vec3
	Color    math.Vec3 // RGB
	UV       math.Vec2
	Normal   math.Vec3
}

// New builds a vertex from all four attributes.
func New(position, color math.Vec3, uv math.Vec2, normal math.Vec3) Vertex {
	return Vertex{Position: position, Color: color, UV: uv, Normal: normal}
}

// FromPosition builds a vertex with black colour, zero UV and zero normal.
func FromPosition(x, y, z float32) Vertex {
	return Vertex{Position: math.Vec3{X: x, Y: y, Z: z}}
}

// AppendFloats appends the packed attribute layout of v to dst.
func (v Vertex) AppendFloats(dst []float32) []float32 {
	return append(dst,
		v.Position.X, v.Position.Y, v.Position.Z,
		v.Color.X, v.Color.Y, v.Color.Z,
		v.UV.X, v.UV.Y,
		v.Normal.X, v.Normal.Y, v.Normal.Z,
	)
}
