package loaders

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

const squareOBJ = `# unit square in the z = 0 plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3
f 1/1 3/3 4/4
`

const tetrahedronOBJ = `v 0 0 0
v 2 0 0
v 0 2 0
v 0 0 2
f 1 3 2
f 1 2 4
f 1 4 3
f 2 3 4
`

func writeOBJ(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing OBJ: %v", err)
	}
	return path
}

func TestLoadOBJ_Square(t *testing.T) {
	mesh, err := LoadOBJ(writeOBJ(t, squareOBJ), nil)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", mesh.TriangleCount())
	}

	rec := geometry.NewHitRecord(core.NewRay(core.NewVec3(0.75, 0.25, 1), core.NewVec3(0, 0, -1)), nil)
	if !mesh.Hit(rec) {
		t.Fatal("expected the square to be hit")
	}
	info := rec.Hit()
	if math.Abs(info.T-1) > 1e-9 {
		t.Errorf("t = %g, want 1", info.T)
	}
	// Texture coordinates match positions for this square
	if math.Abs(info.UV.X-0.75) > 1e-9 || math.Abs(info.UV.Y-0.25) > 1e-9 {
		t.Errorf("uv = %v, want (0.75, 0.25)", info.UV)
	}
}

func TestLoadOBJ_FitInside(t *testing.T) {
	options := &OBJOptions{
		FitInside: core.NewAABBFromPoints(core.NewVec3(-1, 0, -1), core.NewVec3(1, 1, 1)),
		Anchor:    core.NewVec3(0.5, 0, 0.5),
	}
	mesh, err := LoadOBJ(writeOBJ(t, tetrahedronOBJ), options)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if mesh.TriangleCount() != 4 {
		t.Fatalf("expected 4 triangles, got %d", mesh.TriangleCount())
	}

	// The height limits the scale to 1/2; the unit cube result is centered on the floor
	box := mesh.BoundingBox()
	const tol = 1e-3
	want := core.NewAABBFromPoints(core.NewVec3(-0.5, 0, -0.5), core.NewVec3(0.5, 1, 0.5))
	for axis := 0; axis < 3; axis++ {
		got, expected := box.Axis(axis), want.Axis(axis)
		if math.Abs(got.Min-expected.Min) > tol || math.Abs(got.Max-expected.Max) > tol {
			t.Errorf("axis %d = %v, want %v", axis, got, expected)
		}
	}
}

func TestLoadOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"Missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.obj") }},
		{"No faces", func(t *testing.T) string { return writeOBJ(t, "v 0 0 0\nv 1 0 0\n") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadOBJ(tt.path(t), nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
