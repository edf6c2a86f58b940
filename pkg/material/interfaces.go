package material

import (
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Material decides what happens to a ray after a confirmed hit.
//
// Scatter reads the ray and hit from rec and must leave exactly one scatter
// outcome set on it (Absorb when it sets nothing). It may also set the hit's
// emission and attenuation. Randomness comes from rec.Sampler().
type Material interface {
	Scatter(rec *geometry.HitRecord)
}
