package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   ColorSource // Metal color
	Fuzzness float64     // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: NewSolidColor(albedo), Fuzzness: core.Clamp(fuzzness, 0.0, 1.0)}
}

// Scatter reflects the incoming direction about the normal and perturbs it
// by a random unit vector scaled by the fuzz. Perturbed reflections that
// point into the surface are absorbed.
func (m *Metal) Scatter(rec *geometry.HitRecord) {
	info := rec.Hit()
	reflected := rec.Ray().Direction.Reflect(info.Normal).Normalize()

	if m.Fuzzness > 0 {
		perturbation := core.SampleOnUnitSphere(rec.Sampler().Get2D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	if reflected.Dot(info.Normal) <= 0 {
		rec.SetScatterAbsorb()
		return
	}
	rec.SetScatterRay(reflected)
	info.Attenuation = evaluateAt(m.Albedo, info, core.White)
}
