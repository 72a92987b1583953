// Package batch merges every mesh of a scene into one vertex stream and one
// re-based index stream so the whole scene draws with a single indexed call.
package batch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/LeDaffy/FlappyClone/internal/engine/component"
	"github.com/LeDaffy/FlappyClone/internal/engine/primitive"
)

// Plan is one frame's merged geometry plus the upload decision.
type Plan struct {
	// Vertices is the packed float buffer, primitive.FloatsPerVertex per vertex.
	Vertices []float32
	// Indices addresses Vertices; every value is below VertexCount.
	Indices []uint32

	VertexCount int
	IndexCount  int

	// Realloc is set when the GPU buffers must be reallocated because the
	// vertex or index count differs from the previous frame. Otherwise the
	// existing storage can be rewritten in place.
	Realloc bool
}

// Empty reports whether there is nothing to draw.
func (p Plan) Empty() bool {
	return p.IndexCount == 0
}

// Merge concatenates the world-space vertices of meshes in order and
// re-bases each mesh's indices by the number of vertices before it. It does
// not check the indices; see ValidateMeshes.
func Merge(meshes []component.Mesh) ([]primitive.Vertex, []uint32) {
	var nv, ni int
	for i := range meshes {
		nv += len(meshes[i].Vertices)
		ni += len(meshes[i].Indices)
	}
	vertices := make([]primitive.Vertex, 0, nv)
	indices := make([]uint32, 0, ni)
	return appendMerged(vertices, indices, meshes)
}

func appendMerged(vertices []primitive.Vertex, indices []uint32, meshes []component.Mesh) ([]primitive.Vertex, []uint32) {
	var offset uint32
	for i := range meshes {
		m := &meshes[i]
		vertices = m.AppendTransformed(vertices)
		for _, idx := range m.Indices {
			indices = append(indices, idx+offset)
		}
		offset += uint32(m.VertexCount())
	}
	return vertices, indices
}

// Flatten packs vertices into the GPU attribute layout.
func Flatten(vertices []primitive.Vertex) []float32 {
	return appendFlat(make([]float32, 0, len(vertices)*primitive.FloatsPerVertex), vertices)
}

func appendFlat(dst []float32, vertices []primitive.Vertex) []float32 {
	for _, v := range vertices {
		dst = v.AppendFloats(dst)
	}
	return dst
}

// ValidateMeshes checks that every mesh's local indices address its own
// vertices. Checked before merging: once re-based, a local index past the
// mesh's vertex count looks like a valid index into the next mesh.
func ValidateMeshes(meshes []component.Mesh) error {
	for i := range meshes {
		n := meshes[i].VertexCount()
		for j, idx := range meshes[i].Indices {
			if int(idx) >= n {
				return fmt.Errorf("mesh %d: index %d at position %d out of range for %d vertices", i, idx, j, n)
			}
		}
	}
	return nil
}

// Synchronizer rebuilds the merged buffers every frame and tracks the sizes
// uploaded last time. It reuses its scratch slices between frames; a Plan is
// only valid until the next Sync.
type Synchronizer struct {
	log *zap.Logger

	vertices []primitive.Vertex
	flat     []float32
	indices  []uint32

	synced      bool
	lastVertex  int
	lastIndex   int
	dumpPending bool
}

// NewSynchronizer creates a synchronizer. The first Sync dumps the merged
// positions and indices to log at debug level; later frames do not.
func NewSynchronizer(log *zap.Logger) *Synchronizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synchronizer{log: log, dumpPending: true}
}

// Sync merges meshes into a Plan. It panics if any mesh carries an index
// beyond its own vertex count.
func (s *Synchronizer) Sync(meshes []component.Mesh) Plan {
	if err := ValidateMeshes(meshes); err != nil {
		panic(fmt.Sprintf("batch: %v", err))
	}
	s.vertices, s.indices = appendMerged(s.vertices[:0], s.indices[:0], meshes)
	s.flat = appendFlat(s.flat[:0], s.vertices)

	p := Plan{
		Vertices:    s.flat,
		Indices:     s.indices,
		VertexCount: len(s.vertices),
		IndexCount:  len(s.indices),
	}
	p.Realloc = !s.synced || p.VertexCount != s.lastVertex || p.IndexCount != s.lastIndex

	if p.Realloc {
		s.log.Debug("buffer size changed",
			zap.Int("vertices", p.VertexCount),
			zap.Int("indices", p.IndexCount),
			zap.Int("prev_vertices", s.lastVertex),
			zap.Int("prev_indices", s.lastIndex),
		)
	}
	if s.dumpPending {
		s.dump()
		s.dumpPending = false
	}

	s.synced = true
	s.lastVertex = p.VertexCount
	s.lastIndex = p.IndexCount
	return p
}

func (s *Synchronizer) dump() {
	if ce := s.log.Check(zap.DebugLevel, "first frame geometry"); ce != nil {
		positions := make([]float32, 0, len(s.vertices)*3)
		for _, v := range s.vertices {
			positions = append(positions, v.Position.X, v.Position.Y, v.Position.Z)
		}
		ce.Write(
			zap.Float32s("positions", positions),
			zap.Uint32s("indices", s.indices),
			zap.Int("index_count", len(s.indices)),
		)
	}
}

// Reset forgets the previously uploaded sizes so the next Sync reallocates,
// e.g. after the GPU buffers were recreated.
func (s *Synchronizer) Reset() {
	s.synced = false
}
