// Package pdf provides probability densities over directions for importance
// sampling. Densities are per unit solid angle.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF draws directions and reports their density
type PDF interface {
	// Generate draws a direction. It need not be normalized.
	Generate(sampler core.Sampler) core.Vec3
	// Prob returns the density of direction
	Prob(direction core.Vec3) float64
}

// CosinePDF is the cosine-weighted hemisphere around a normal
type CosinePDF struct {
	basis core.ONB
}

// NewCosinePDF creates a cosine-weighted PDF around normal
func NewCosinePDF(normal core.Vec3) CosinePDF {
	return CosinePDF{basis: core.NewONB(normal)}
}

// Generate implements PDF
func (c CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return c.basis.Local(core.SampleCosineDirection(sampler.Get2D()))
}

// Prob implements PDF. Directions below the hemisphere have zero density.
func (c CosinePDF) Prob(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(c.basis.W)
	return math.Max(0, cosine/math.Pi)
}

// UniformSpherePDF is uniform over all directions
type UniformSpherePDF struct{}

// Generate implements PDF
func (UniformSpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// Prob implements PDF
func (UniformSpherePDF) Prob(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}
