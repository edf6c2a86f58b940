package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TriangleMesh represents a collection of triangles with efficient ray intersection
// It uses an internal BVH (Bounding Volume Hierarchy) for fast intersection tests
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVH
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	UVs    []core.Vec2 // Optional per-vertex texture coordinates
	Scale  float64     // Uniform scale applied before Offset; 0 means 1
	Offset core.Vec3   // Translation applied after scaling
}

// NewTriangleMesh creates a mesh from vertices and face indices, three
// indices per triangle. Degenerate triangles are kept; they never hit.
func NewTriangleMesh(vertices []core.Vec3, faces []int, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}
	if options != nil && options.UVs != nil && len(options.UVs) != len(vertices) {
		return nil, fmt.Errorf("got %d texture coordinates for %d vertices", len(options.UVs), len(vertices))
	}

	working := vertices
	if options != nil && (options.Scale != 0 || options.Offset != (core.Vec3{})) {
		scale := options.Scale
		if scale == 0 {
			scale = 1
		}
		working = make([]core.Vec3, len(vertices))
		for i, v := range vertices {
			working[i] = v.Multiply(scale).Add(options.Offset)
		}
	}

	triangles := make([]Shape, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(working) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i/3, idx, len(working))
			}
		}

		if options != nil && options.UVs != nil {
			triangles = append(triangles, NewTriangleWithUV(working[i0], working[i1], working[i2],
				options.UVs[i0], options.UVs[i1], options.UVs[i2]))
		} else {
			triangles = append(triangles, NewTriangle(working[i0], working[i1], working[i2]))
		}
	}

	return NewTriangleMeshFromTriangles(triangles), nil
}

// NewTriangleMeshFromTriangles wraps already-built triangles
func NewTriangleMeshFromTriangles(triangles []Shape) *TriangleMesh {
	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(triangles),
	}
}

// Hit implements Shape
func (m *TriangleMesh) Hit(rec *HitRecord) bool {
	return m.bvh.Hit(rec)
}

// BoundingBox implements Shape
func (m *TriangleMesh) BoundingBox() core.AABB {
	return m.bvh.BoundingBox()
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}
