package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Sphere represents a sphere shape. A negative radius flips the normals
// inward, which is handy for hollow glass.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(rec *HitRecord) bool {
	ray := rec.Ray()
	window := rec.Interval()

	// Quadratic in t with b = -2h
	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if a == 0 || s.Radius == 0 || discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !window.Surrounds(root) {
		root = (h + sqrtD) / a
		if !window.Surrounds(root) {
			return false
		}
	}

	outwardNormal := ray.At(root).Subtract(s.Center).Multiply(1.0 / s.Radius)
	return rec.SetHit(root, outwardNormal, sphereUV(outwardNormal))
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X, v runs from -Y to +Y.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(core.Clamp(-p.Y, -1.0, 1.0))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABBFromPoints(s.Center.Subtract(radius), s.Center.Add(radius))
}

// Prob returns the solid-angle density of sampling direction from origin
// uniformly over the cone the sphere subtends, or 0 if direction misses.
// From inside the sphere every direction hits, so the density is uniform.
func (s *Sphere) Prob(origin, direction core.Vec3) float64 {
	rec := NewHitRecord(core.NewRay(origin, direction), nil)
	if !s.Hit(rec) {
		return 0
	}
	distSquared := s.Center.Subtract(origin).LengthSquared()
	if distSquared < s.Radius*s.Radius {
		return pdf.UniformSpherePDF{}.Prob(direction)
	}
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Generate draws a direction from origin uniformly within the sphere's cone
func (s *Sphere) Generate(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	if direction.LengthSquared() < s.Radius*s.Radius {
		return pdf.UniformSpherePDF{}.Generate(sampler)
	}
	basis := core.NewONB(direction)
	return basis.Local(core.SampleToSphere(s.Radius, direction.LengthSquared(), sampler.Get2D()))
}
