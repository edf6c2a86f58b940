package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. Implementations
	// must be safe to call concurrently with distinct samplers.
	RayColor(ray core.Ray, world *scene.World, sampler core.Sampler) core.Vec3
}
