package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathTracingIntegrator implements unidirectional path tracing with a hard
// depth cutoff
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator. A path
// visits at most maxDepth surfaces.
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// RayColor computes the color for a single ray. Each iteration peels one
// bounce: emission is added under the current throughput, then the
// throughput picks up the bounce's attenuation and importance weight.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world *scene.World, sampler core.Sampler) core.Vec3 {
	radiance := core.Black
	throughput := core.White

	for depth := pt.maxDepth; depth > 0; depth-- {
		rec, hit := world.Hit(ray, sampler)
		if !hit {
			radiance = radiance.Add(throughput.MultiplyVec(world.BackgroundColor(ray)))
			break
		}

		info := rec.Hit()
		radiance = radiance.Add(throughput.MultiplyVec(info.Emission))

		switch info.Scatter.Kind {
		case geometry.ScatterRay:
			throughput = throughput.MultiplyVec(info.Attenuation)
			ray = info.Scatter.Ray()

		case geometry.ScatterPDF:
			next, mixtureProb, materialProb := rec.GenerateScatter(world.Lights)
			weight := materialProb / mixtureProb
			// A zero mixture density gives 0/0; the continuation then contributes nothing
			if math.IsNaN(weight) || math.IsInf(weight, 0) {
				return radiance.Sanitize()
			}
			throughput = throughput.MultiplyVec(info.Attenuation).Multiply(weight)
			ray = next

		default:
			return radiance.Sanitize()
		}

		if throughput == core.Black {
			break
		}
	}

	return radiance.Sanitize()
}
