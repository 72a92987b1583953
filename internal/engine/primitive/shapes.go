package primitive

import "github.com/LeDaffy/FlappyClone/pkg/math"

// Tri is a single triangle.
type Tri struct {
	Vertices [3]Vertex
}

// TriFromPositions builds a triangle from three bare positions.
func TriFromPositions(a, b, c math.Vec3) Tri {
	return Tri{Vertices: [3]Vertex{
		{Position: a},
		{Position: b},
		{Position: c},
	}}
}

// Elements returns the local index list.
func (t Tri) Elements() []uint32 {
	return []uint32{0, 1, 2}
}

// QuadElements is the index list shared by every quad: two triangles
// wound counter-clockwise over corners 0..3.
var QuadElements = [6]uint32{0, 1, 2, 0, 2, 3}

// Quad is four corners drawn as two triangles.
type Quad struct {
	Vertices [4]Vertex
}

// NewQuad wraps four corners.
func NewQuad(v0, v1, v2, v3 Vertex) Quad {
	return Quad{Vertices: [4]Vertex{v0, v1, v2, v3}}
}

// Square returns the 2x2 quad centred at the origin on the XY plane.
func Square() Quad {
	return NewQuad(
		FromPosition(-1, -1, 0),
		FromPosition(1, -1, 0),
		FromPosition(1, 1, 0),
		FromPosition(-1, 1, 0),
	)
}

// Elements returns a fresh copy of the quad index list.
func (q Quad) Elements() []uint32 {
	e := QuadElements
	return e[:]
}

// VertexSlice returns the corners as a slice.
func (q Quad) VertexSlice() []Vertex {
	v := q.Vertices
	return v[:]
}

// Cube is six quads forming a unit cube centred at the origin.
type Cube struct {
	Faces [6]Quad
}

// Vertices returns all 24 face vertices, face by face.
func (c Cube) Vertices() []Vertex {
	out := make([]Vertex, 0, 24)
	for _, f := range c.Faces {
		out = append(out, f.Vertices[:]...)
	}
	return out
}

// Elements returns the 36 indices of the cube, each face re-based past the
// vertices of the faces before it.
func (c Cube) Elements() []uint32 {
	out := make([]uint32, 0, 36)
	var offset uint32
	for _, f := range c.Faces {
		for _, e := range f.Elements() {
			out = append(out, e+offset)
		}
		offset += uint32(len(f.Vertices))
	}
	return out
}

// NewCube builds the unit cube. Each corner's colour encodes its position so
// faces are distinguishable without a texture.
func NewCube() Cube {
	corner := func(x, y, z, u, v float32) Vertex {
		return New(
			math.Vec3{X: x, Y: y, Z: z},
			math.Vec3{X: x + 0.5, Y: y + 0.5, Z: z + 0.5},
			math.Vec2{X: u, Y: v},
			math.Vec3{X: 0, Y: 0, Z: 1},
		)
	}
	const h = 0.5
	return Cube{Faces: [6]Quad{
		// bottom
		NewQuad(corner(-h, -h, -h, 0, 0), corner(h, -h, -h, 1, 0), corner(h, h, -h, 1, 1), corner(-h, h, -h, 0, 1)),
		// top
		NewQuad(corner(-h, -h, h, 0, 0), corner(h, -h, h, 1, 0), corner(h, h, h, 1, 1), corner(-h, h, h, 0, 1)),
		// -y
		NewQuad(corner(-h, -h, -h, 0, 0), corner(h, -h, -h, 1, 0), corner(h, -h, h, 1, 1), corner(-h, -h, h, 0, 1)),
		// +y
		NewQuad(corner(-h, h, -h, 0, 0), corner(h, h, -h, 1, 0), corner(h, h, h, 1, 1), corner(-h, h, h, 0, 1)),
		// -x
		NewQuad(corner(-h, -h, -h, 0, 0), corner(-h, h, -h, 1, 0), corner(-h, h, h, 1, 1), corner(-h, -h, h, 0, 1)),
		// +x
		NewQuad(corner(h, -h, -h, 0, 0), corner(h, h, -h, 1, 0), corner(h, h, h, 1, 1), corner(h, -h, h, 0, 1)),
	}}
}
