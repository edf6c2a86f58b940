package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConstantMedium fills a closed boundary shape with a homogeneous
// participating medium. Hits are stochastic: a ray travelling through the
// volume scatters after an exponentially distributed distance.
type ConstantMedium struct {
	Boundary         Shape
	negInvDensity    float64
	boundaryMinDelta float64
}

// NewConstantMedium fills boundary with a medium of the given density
func NewConstantMedium(boundary Shape, density float64) *ConstantMedium {
	return &ConstantMedium{
		Boundary:         boundary,
		negInvDensity:    -1 / density,
		boundaryMinDelta: 0.0001,
	}
}

// Hit implements Shape. The record's sampler must be set.
func (c *ConstantMedium) Hit(rec *HitRecord) bool {
	ray := rec.Ray()

	// Entry point, searching the whole line so rays starting inside still work
	entry := NewHitRecord(ray, nil)
	entry.SetInterval(core.UniverseInterval)
	if !c.Boundary.Hit(entry) {
		return false
	}
	t1 := entry.Hit().T

	// Exit point, strictly after the entry
	exit := NewHitRecord(ray, nil)
	exit.SetInterval(core.NewInterval(t1+c.boundaryMinDelta, math.Inf(1)))
	if !c.Boundary.Hit(exit) {
		return false
	}
	t2 := exit.Hit().T

	inside := core.NewInterval(t1, t2).Intersect(rec.Interval())
	if inside.IsEmpty() {
		return false
	}

	rayLength := ray.Direction.Length()
	if rayLength == 0 {
		return false
	}
	// 1 - u keeps the log argument in (0, 1]
	hitDistance := c.negInvDensity * math.Log(1-rec.Sampler().Get1D())
	t := inside.Min + hitDistance/rayLength
	if !inside.Surrounds(t) {
		return false
	}

	rec.SetHitArbitrary(t)
	return true
}

// BoundingBox implements Shape
func (c *ConstantMedium) BoundingBox() core.AABB {
	return c.Boundary.BoundingBox()
}
