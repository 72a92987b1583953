package batch

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/LeDaffy/FlappyClone/internal/engine/component"
	"github.com/LeDaffy/FlappyClone/internal/engine/primitive"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

func quad() component.Mesh {
	return component.MeshFromQuad(primitive.Square())
}

func tri() component.Mesh {
	t := primitive.TriFromPositions(math.Vec3{}, math.Vec3{X: 1}, math.Vec3{Y: 1})
	return component.NewMesh(t.Vertices[:], t.Elements())
}

func equalIndices(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMergeTwoQuads(t *testing.T) {
	vertices, indices := Merge([]component.Mesh{quad(), quad()})
	if len(vertices) != 8 {
		t.Errorf("vertex count = %d, want 8", len(vertices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if !equalIndices(indices, want) {
		t.Errorf("indices = %v, want %v", indices, want)
	}
}

func TestMergeRebasing(t *testing.T) {
	cube := component.MeshFromCube(primitive.NewCube())
	meshes := []component.Mesh{tri(), quad(), cube, tri()}
	vertices, indices := Merge(meshes)

	var pos, base int
	for k, m := range meshes {
		for j, local := range m.Indices {
			if got, want := indices[pos+j], local+uint32(base); got != want {
				t.Fatalf("mesh %d index %d = %d, want %d", k, j, got, want)
			}
			// Re-based indices stay inside the mesh's own vertex range.
			if g := int(indices[pos+j]); g < base || g >= base+len(m.Vertices) {
				t.Fatalf("mesh %d index %d = %d escapes its range [%d,%d)", k, j, g, base, base+len(m.Vertices))
			}
		}
		pos += len(m.Indices)
		base += len(m.Vertices)
	}
	if len(vertices) != base {
		t.Fatalf("vertex count = %d, want %d", len(vertices), base)
	}
	if err := ValidateMeshes(meshes); err != nil {
		t.Fatal(err)
	}
}

func TestMergeUsesTransformedVertices(t *testing.T) {
	a := quad()
	b := quad()
	b.Translation = math.Vec3{X: 10}
	vertices, _ := Merge([]component.Mesh{a, b})
	if vertices[4].Position.X != 9 {
		t.Errorf("second mesh first vertex x = %v, want 9", vertices[4].Position.X)
	}
	if vertices[0].Position.X != -1 {
		t.Errorf("first mesh first vertex x = %v, want -1", vertices[0].Position.X)
	}
}

func TestMergeEmpty(t *testing.T) {
	vertices, indices := Merge(nil)
	if len(vertices) != 0 || len(indices) != 0 {
		t.Errorf("Merge(nil) = %d vertices, %d indices", len(vertices), len(indices))
	}
}

func TestFlatten(t *testing.T) {
	v := primitive.New(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{}, math.Vec2{X: 0.5, Y: 0.25}, math.Vec3{})
	flat := Flatten([]primitive.Vertex{v, v})
	if len(flat) != 2*primitive.FloatsPerVertex {
		t.Fatalf("len = %d", len(flat))
	}
	second := flat[primitive.FloatsPerVertex:]
	if second[0] != 1 || second[2] != 3 || second[primitive.UVOffset+1] != 0.25 {
		t.Errorf("second vertex = %v", second)
	}
}

func TestValidateMeshes(t *testing.T) {
	leaky := quad()
	leaky.Indices = []uint32{0, 1, 5}

	tests := []struct {
		name    string
		meshes  []component.Mesh
		wantErr string
	}{
		{"empty", nil, ""},
		{"valid", []component.Mesh{quad(), tri()}, ""},
		{"index into next mesh", []component.Mesh{leaky, quad()}, "mesh 0: index 5 at position 2 out of range for 4 vertices"},
		{"last mesh", []component.Mesh{quad(), leaky}, "mesh 1: index 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMeshes(tt.meshes)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSyncPlan(t *testing.T) {
	s := NewSynchronizer(nil)
	p := s.Sync([]component.Mesh{quad(), quad()})

	if p.VertexCount != 8 || p.IndexCount != 12 {
		t.Fatalf("counts = %d/%d, want 8/12", p.VertexCount, p.IndexCount)
	}
	if len(p.Vertices) != 8*primitive.FloatsPerVertex {
		t.Errorf("flat len = %d", len(p.Vertices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if !equalIndices(p.Indices, want) {
		t.Errorf("indices = %v, want %v", p.Indices, want)
	}
	if p.Empty() {
		t.Error("plan should not be empty")
	}
}

func TestSyncReallocDecision(t *testing.T) {
	s := NewSynchronizer(nil)
	meshes := []component.Mesh{quad(), quad()}

	if p := s.Sync(meshes); !p.Realloc {
		t.Error("first sync must reallocate")
	}

	// Same sizes, different content: in-place update.
	meshes[0].Translation = math.Vec3{Z: 5}
	if p := s.Sync(meshes); p.Realloc {
		t.Error("unchanged sizes should not reallocate")
	}

	// Vertex count changes.
	meshes = append(meshes, tri())
	if p := s.Sync(meshes); !p.Realloc {
		t.Error("grown buffer must reallocate")
	}
	if p := s.Sync(meshes); p.Realloc {
		t.Error("stable buffer should not reallocate")
	}

	// Index count changes while vertex count stays.
	meshes[2].Indices = []uint32{0, 1, 2, 2, 1, 0}
	if p := s.Sync(meshes); !p.Realloc {
		t.Error("index count change must reallocate")
	}

	s.Reset()
	if p := s.Sync(meshes); !p.Realloc {
		t.Error("sync after Reset must reallocate")
	}
}

func TestSyncPanicsOnBadIndex(t *testing.T) {
	bad := quad()
	bad.Indices = []uint32{0, 1, 4}
	s := NewSynchronizer(nil)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for index past the buffer")
		}
	}()
	s.Sync([]component.Mesh{bad})
}

func TestSyncPanicsOnIndexIntoNextMesh(t *testing.T) {
	// Re-based, index 5 of the first quad would be a valid slot of the
	// second quad, so only the per-mesh check can catch it.
	bad := quad()
	bad.Indices = []uint32{0, 1, 5}
	s := NewSynchronizer(nil)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for index past its own mesh")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "mesh 0") {
			t.Errorf("panic = %v, want it to name mesh 0", r)
		}
	}()
	s.Sync([]component.Mesh{bad, quad()})
}

func TestSyncDumpsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSynchronizer(zap.New(core))
	meshes := []component.Mesh{quad()}

	for i := 0; i < 5; i++ {
		s.Sync(meshes)
	}
	dumps := logs.FilterMessage("first frame geometry").All()
	if len(dumps) != 1 {
		t.Fatalf("geometry dumped %d times, want 1", len(dumps))
	}
	fields := dumps[0].ContextMap()
	if fields["index_count"] != int64(6) {
		t.Errorf("index_count = %v, want 6", fields["index_count"])
	}

	// A second synchronizer has its own guard.
	s2 := NewSynchronizer(zap.New(core))
	s2.Sync(meshes)
	if n := logs.FilterMessage("first frame geometry").Len(); n != 2 {
		t.Errorf("dumps after second synchronizer = %d, want 2", n)
	}
}

func TestSyncDoesNotMutateMeshes(t *testing.T) {
	m := quad()
	m.Vertices[0].UV = math.Vec2{X: 0.5, Y: 0.2}
	meshes := []component.Mesh{m}
	s := NewSynchronizer(nil)
	s.Sync(meshes)
	p := s.Sync(meshes)
	if meshes[0].Vertices[0].UV.Y != 0.2 {
		t.Errorf("mesh uv mutated to %v", meshes[0].Vertices[0].UV)
	}
	if got := p.Vertices[primitive.UVOffset+1]; got != 0.8 {
		t.Errorf("flipped uv = %v, want 0.8", got)
	}
}
