package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission ColorSource // Emitted light color
	Ratio    float64     // Intensity multiplier
}

// NewEmissive creates a new emissive material with a solid emission color
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: NewSolidColor(emission), Ratio: 1.0}
}

// NewTexturedEmissive creates an emissive material whose color comes from a texture
func NewTexturedEmissive(emission ColorSource, ratio float64) *Emissive {
	return &Emissive{Emission: emission, Ratio: ratio}
}

// Scatter absorbs every ray. Only the front face emits.
func (e *Emissive) Scatter(rec *geometry.HitRecord) {
	info := rec.Hit()
	rec.SetScatterAbsorb()
	if info.FrontFace {
		info.Emission = evaluateAt(e.Emission, info, core.White).Multiply(e.Ratio)
	}
}
