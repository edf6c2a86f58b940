package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter attaches a cosine-weighted hemisphere around the normal. The
// attenuation is the plain albedo: the BRDF's 1/π and the cosine cancel
// against the cosine density.
func (l *Lambertian) Scatter(rec *geometry.HitRecord) {
	info := rec.Hit()
	rec.SetScatterPDF(pdf.NewCosinePDF(info.Normal))
	info.Attenuation = evaluateAt(l.Albedo, info, core.White)
}
