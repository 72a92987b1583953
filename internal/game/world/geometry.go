package world

import (
	"github.com/LeDaffy/FlappyClone/internal/engine/component"
	"github.com/LeDaffy/FlappyClone/internal/engine/primitive"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// Sprite atlas coordinates.
var (
	birdUV = [4]math.Vec2{
		{X: 0.005859, Y: 0.011719},
		{X: 0.039062, Y: 0.011719},
		{X: 0.039062, Y: 0.044922},
		{X: 0.005859, Y: 0.044922},
	}

	pipeLeftU  float32 = 0.164062
	pipeRightU float32 = 0.214844
	pipeCapV   float32 = 0.056641
	pipeBaseV  float32 = 0.369141
)

// Pipe dimensions in world units. The pair sits on the y = -1 plane behind
// the bird, with a gap of 2*pipeGapHalf centred on z = 0.
const (
	pipeWidth   = 26
	pipeHeight  = 160
	pipeGapHalf = 40
	pipeDepth   = -1
	pipeOffset  = 200
)

// birdMesh is the 2x2 sprite quad on the XZ plane facing the camera, so
// pitch about Y tilts it in view.
func birdMesh(scale float32) component.Mesh {
	corners := [4]math.Vec3{
		{X: -1, Z: -1},
		{X: 1, Z: -1},
		{X: 1, Z: 1},
		{X: -1, Z: 1},
	}
	var q primitive.Quad
	for i, p := range corners {
		q.Vertices[i] = primitive.Vertex{Position: p, UV: birdUV[i]}
	}
	m := component.MeshFromQuad(q)
	m.Scale = math.Vec3{X: scale, Y: scale, Z: scale}
	return m
}

func pipeVertex(x, z, u, v float32) primitive.Vertex {
	return primitive.Vertex{
		Position: math.Vec3{X: x, Y: pipeDepth, Z: z},
		UV:       math.Vec2{X: u, Y: v},
	}
}

// pipesMesh is the lower and upper pipe as two quads sharing one mesh. The
// upper pipe's V coordinates are swapped so its cap faces the gap.
func pipesMesh(startX float32) component.Mesh {
	lowBottom := float32(-pipeOffset)
	lowTop := float32(pipeHeight - pipeOffset)
	highBottom := float32(pipeGapHalf)
	highTop := float32(pipeHeight + pipeGapHalf)

	vertices := []primitive.Vertex{
		pipeVertex(0, lowBottom, pipeLeftU, pipeCapV),
		pipeVertex(pipeWidth, lowBottom, pipeRightU, pipeCapV),
		pipeVertex(pipeWidth, lowTop, pipeRightU, pipeBaseV),
		pipeVertex(0, lowTop, pipeLeftU, pipeBaseV),

		pipeVertex(0, highBottom, pipeLeftU, pipeBaseV),
		pipeVertex(pipeWidth, highBottom, pipeRightU, pipeBaseV),
		pipeVertex(pipeWidth, highTop, pipeRightU, pipeCapV),
		pipeVertex(0, highTop, pipeLeftU, pipeCapV),
	}
	indices := make([]uint32, 0, 12)
	for q := uint32(0); q < 2; q++ {
		for _, e := range primitive.QuadElements {
			indices = append(indices, e+4*q)
		}
	}

	m := component.NewMesh(vertices, indices)
	m.Translation = math.Vec3{X: startX}
	return m
}
