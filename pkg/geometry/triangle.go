package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2    core.Vec3 // The three vertices
	UV0, UV1, UV2 core.Vec2 // Per-vertex texture coordinates
	normal        core.Vec3 // Cached unit normal
	bbox          core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices with default
// texture coordinates (0,0), (1,0), (0,1)
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	return NewTriangleWithUV(v0, v1, v2,
		core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1))
}

// NewTriangleWithUV creates a triangle with explicit per-vertex texture coordinates
func NewTriangleWithUV(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2) *Triangle {
	return &Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		UV0:    uv0,
		UV1:    uv1,
		UV2:    uv2,
		normal: v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bbox:   core.NewAABBFromPoints(v0, v1, v2).Pad(),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(rec *HitRecord) bool {
	const epsilon = 1e-8
	ray := rec.Ray()

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in the plane of the triangle, or the triangle has no area
	if det > -epsilon && det < epsilon {
		return false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tHit := f * edge2.Dot(q)
	if !rec.Interval().Surrounds(tHit) {
		return false
	}

	w := 1 - u - v
	uv := core.NewVec2(
		w*t.UV0.X+u*t.UV1.X+v*t.UV2.X,
		w*t.UV0.Y+u*t.UV1.Y+v*t.UV2.Y,
	)
	return rec.SetHit(tHit, t.normal, uv)
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
