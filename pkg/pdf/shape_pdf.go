package pdf

import "github.com/df07/go-pathtracer/pkg/core"

// ShapePDFProvider is a shape that can be sampled by solid angle as seen from a point
type ShapePDFProvider interface {
	// Generate draws a direction from origin toward the shape
	Generate(origin core.Vec3, sampler core.Sampler) core.Vec3
	// Prob returns the solid-angle density of direction from origin, or 0 if
	// the direction misses the shape
	Prob(origin, direction core.Vec3) float64
}

// ShapePDF is an equal-weight mixture over shape providers. It is used to
// steer scattered rays toward lights.
type ShapePDF struct {
	providers []ShapePDFProvider
}

// NewShapePDF creates a mixture over the given providers
func NewShapePDF(providers ...ShapePDFProvider) *ShapePDF {
	return &ShapePDF{providers: providers}
}

// Add registers another provider
func (s *ShapePDF) Add(provider ShapePDFProvider) {
	s.providers = append(s.providers, provider)
}

// IsEmpty reports whether no provider is registered. A nil mixture is empty.
func (s *ShapePDF) IsEmpty() bool {
	return s == nil || len(s.providers) == 0
}

// Len returns the number of providers
func (s *ShapePDF) Len() int {
	if s == nil {
		return 0
	}
	return len(s.providers)
}

// Generate picks a provider uniformly and asks it for a direction.
// Must not be called on an empty mixture.
func (s *ShapePDF) Generate(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	n := len(s.providers)
	index := int(sampler.Get1D() * float64(n))
	if index >= n {
		index = n - 1
	}
	return s.providers[index].Generate(origin, sampler)
}

// Prob averages every provider's density with weight 1/n
func (s *ShapePDF) Prob(direction, origin core.Vec3) float64 {
	if s.IsEmpty() {
		return 0
	}
	weight := 1.0 / float64(len(s.providers))
	sum := 0.0
	for _, p := range s.providers {
		sum += weight * p.Prob(origin, direction)
	}
	return sum
}
