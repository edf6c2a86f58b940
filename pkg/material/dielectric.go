package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter picks reflection or refraction with Schlick's Fresnel estimate and
// continues along a single ray. Clear glass leaves the default white
// attenuation untouched.
func (d *Dielectric) Scatter(rec *geometry.HitRecord) {
	info := rec.Hit()

	// Entering the material from air, or leaving it
	refractionRatio := d.RefractiveIndex
	if info.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rec.Ray().Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(info.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := refractionRatio*sinTheta > 1.0
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > rec.Sampler().Get1D() {
		rec.SetScatterRay(unitDirection.Reflect(info.Normal))
		return
	}
	rec.SetScatterRay(unitDirection.Refract(info.Normal, refractionRatio))
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
