package loaders

import (
	"fmt"

	"github.com/fogleman/pt/pt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// OBJOptions controls how a loaded mesh is placed in the scene
type OBJOptions struct {
	// FitInside, when non-empty, uniformly scales and moves the mesh into the box
	FitInside core.AABB
	// Anchor picks where a mesh smaller than FitInside sits, per axis in [0, 1].
	// (0.5, 0, 0.5) centers it horizontally on the floor of the box.
	Anchor core.Vec3
}

// LoadOBJ parses a Wavefront OBJ file into a triangle mesh. Texture
// coordinates are kept when the file has them. Materials in the file are
// ignored; callers pair the mesh with their own material.
func LoadOBJ(filename string, options *OBJOptions) (*geometry.TriangleMesh, error) {
	mesh, err := pt.LoadOBJ(filename, pt.DiffuseMaterial(pt.White))
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ %s: %w", filename, err)
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("OBJ %s contains no triangles", filename)
	}

	if options != nil && !options.FitInside.IsEmpty() {
		box := pt.Box{
			Min: pt.V(options.FitInside.X.Min, options.FitInside.Y.Min, options.FitInside.Z.Min),
			Max: pt.V(options.FitInside.X.Max, options.FitInside.Y.Max, options.FitInside.Z.Max),
		}
		mesh.FitInside(box, fromCore(options.Anchor))
	}

	triangles := make([]geometry.Shape, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		v0, v1, v2 := toCore(t.V1), toCore(t.V2), toCore(t.V3)
		if hasTextureCoords(t) {
			triangles = append(triangles, geometry.NewTriangleWithUV(v0, v1, v2,
				core.NewVec2(t.T1.X, t.T1.Y), core.NewVec2(t.T2.X, t.T2.Y), core.NewVec2(t.T3.X, t.T3.Y)))
		} else {
			triangles = append(triangles, geometry.NewTriangle(v0, v1, v2))
		}
	}

	return geometry.NewTriangleMeshFromTriangles(triangles), nil
}

func hasTextureCoords(t *pt.Triangle) bool {
	var zero pt.Vector
	return t.T1 != zero || t.T2 != zero || t.T3 != zero
}

func toCore(v pt.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

func fromCore(v core.Vec3) pt.Vector {
	return pt.V(v.X, v.Y, v.Z)
}
