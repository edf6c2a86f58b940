package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic scatters uniformly in all directions, for participating media
type Isotropic struct {
	Albedo ColorSource
	Glow   float64 // Probability of absorbing and emitting the albedo instead of scattering
}

// NewIsotropic creates a non-glowing isotropic material
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewGlowingIsotropic creates an isotropic medium that glows with probability glow
func NewGlowingIsotropic(albedo core.Vec3, glow float64) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo), Glow: core.Clamp(glow, 0.0, 1.0)}
}

// Scatter implements Material
func (m *Isotropic) Scatter(rec *geometry.HitRecord) {
	info := rec.Hit()
	color := evaluateAt(m.Albedo, info, core.White)
	if m.Glow > 0 && rec.Sampler().Get1D() < m.Glow {
		rec.SetScatterAbsorb()
		info.Emission = color
		return
	}
	rec.SetScatterPDF(pdf.UniformSpherePDF{})
	info.Attenuation = color
}
