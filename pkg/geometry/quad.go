package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad is the parallelogram with corner Q and edges U and V
type Quad struct {
	Q, U, V core.Vec3
	Normal  core.Vec3 // unit normal along U×V
	D       float64   // plane constant: Normal·p = D
	W       core.Vec3 // n/|n|², used to recover planar coordinates
	Area    float64
}

// NewQuad creates a quad from a corner and two edge vectors. Parallel or
// zero edges give a degenerate quad that is never hit.
func NewQuad(q, u, v core.Vec3) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()
	w := core.Vec3{}
	if nn := n.LengthSquared(); nn > 0 {
		w = n.Multiply(1 / nn)
	}
	return &Quad{
		Q:      q,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(q),
		W:      w,
		Area:   n.Length(),
	}
}

// Hit tests if a ray intersects the quad
func (q *Quad) Hit(rec *HitRecord) bool {
	ray := rec.Ray()

	denom := q.Normal.Dot(ray.Direction)
	// Parallel to the plane, or a degenerate quad with a zero normal
	if math.Abs(denom) < 1e-8 {
		return false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denom
	if !rec.Interval().Contains(t) {
		return false
	}

	// Planar coordinates of the hit relative to Q
	planar := ray.At(t).Subtract(q.Q)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))
	if !core.UnitInterval.Contains(alpha) || !core.UnitInterval.Contains(beta) {
		return false
	}

	return rec.SetHit(t, q.Normal, core.NewVec2(alpha, beta))
}

// BoundingBox returns the padded box of both diagonals
func (q *Quad) BoundingBox() core.AABB {
	diagonal1 := core.NewAABBFromPoints(q.Q, q.Q.Add(q.U).Add(q.V))
	diagonal2 := core.NewAABBFromPoints(q.Q.Add(q.U), q.Q.Add(q.V))
	return diagonal1.Union(diagonal2).Pad()
}

// Prob converts the uniform area density of the quad into a solid-angle
// density seen from origin, or 0 if direction misses
func (q *Quad) Prob(origin, direction core.Vec3) float64 {
	rec := NewHitRecord(core.NewRay(origin, direction), nil)
	if !q.Hit(rec) {
		return 0
	}
	hit := rec.Hit()
	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := -direction.Dot(hit.Normal) / direction.Length()
	return distSquared / (cosine * q.Area)
}

// Generate picks a uniform point on the quad and returns the direction to it
func (q *Quad) Generate(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	return q.Q.Add(q.U.Multiply(s.X)).Add(q.V.Multiply(s.Y)).Subtract(origin)
}
