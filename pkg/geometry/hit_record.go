package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// ScatterKind tells the integrator how a path continues after a hit
type ScatterKind int

const (
	// ScatterAbsorb ends the path; only emission is collected
	ScatterAbsorb ScatterKind = iota
	// ScatterPDF continues by importance sampling a direction density
	ScatterPDF
	// ScatterRay continues along a single deterministic ray
	ScatterRay
)

func (k ScatterKind) String() string {
	switch k {
	case ScatterPDF:
		return "pdf"
	case ScatterRay:
		return "ray"
	default:
		return "absorb"
	}
}

// Scatter is the outcome of a material interaction. Exactly one variant is
// active; the zero value is Absorb.
type Scatter struct {
	Kind    ScatterKind
	density pdf.PDF
	ray     core.Ray
}

// PDF returns the density of a ScatterPDF outcome. Calling it on another
// variant is a programming error and panics.
func (s Scatter) PDF() pdf.PDF {
	if s.Kind != ScatterPDF {
		panic("geometry: Scatter.PDF called on " + s.Kind.String() + " scatter")
	}
	return s.density
}

// Ray returns the outgoing ray of a ScatterRay outcome. Calling it on another
// variant is a programming error and panics.
func (s Scatter) Ray() core.Ray {
	if s.Kind != ScatterRay {
		panic("geometry: Scatter.Ray called on " + s.Kind.String() + " scatter")
	}
	return s.ray
}

// HitInfo describes the closest surface found so far
type HitInfo struct {
	T           float64
	Position    core.Vec3
	Normal      core.Vec3 // unit length, always facing against the incoming ray
	FrontFace   bool      // true when the ray arrived from the outside
	UV          core.Vec2
	Emission    core.Vec3
	Attenuation core.Vec3
	Scatter     Scatter
}

// AcceptFunc can veto a candidate hit before it is recorded
type AcceptFunc func(info *HitInfo) bool

// HitRecord threads one ray through an intersection search. Its interval is
// the search window: every accepted hit lowers the upper bound to its t, so
// only strictly closer surfaces can replace it.
type HitRecord struct {
	ray      core.Ray
	interval core.Interval
	info     HitInfo
	hasHit   bool
	sampler  core.Sampler
	accept   AcceptFunc
}

// NewHitRecord starts a search for ray over the positive interval
func NewHitRecord(ray core.Ray, sampler core.Sampler) *HitRecord {
	return &HitRecord{
		ray:      ray,
		interval: core.PositiveInterval,
		sampler:  sampler,
	}
}

// Ray returns the ray being traced. Wrappers may temporarily replace it
// with SetRay but must restore it before returning.
func (h *HitRecord) Ray() core.Ray {
	return h.ray
}

// SetRay replaces the ray being traced
func (h *HitRecord) SetRay(ray core.Ray) {
	h.ray = ray
}

// Interval returns the current search window
func (h *HitRecord) Interval() core.Interval {
	return h.interval
}

// SetInterval replaces the search window
func (h *HitRecord) SetInterval(interval core.Interval) {
	h.interval = interval
}

// Sampler returns the random source for stochastic shapes and materials
func (h *HitRecord) Sampler() core.Sampler {
	return h.sampler
}

// SetAccept installs a hit filter and returns the previous one so the
// caller can restore it
func (h *HitRecord) SetAccept(accept AcceptFunc) AcceptFunc {
	previous := h.accept
	h.accept = accept
	return previous
}

// DoesHit reports whether any surface has been recorded
func (h *HitRecord) DoesHit() bool {
	return h.hasHit
}

// Hit returns the recorded surface. Calling it before a hit is a programming
// error and panics.
func (h *HitRecord) Hit() *HitInfo {
	if !h.hasHit {
		panic("geometry: HitRecord.Hit called before any hit was recorded")
	}
	return &h.info
}

func (h *HitRecord) newHitInfo(t float64, outwardNormal core.Vec3, uv core.Vec2) HitInfo {
	frontFace := h.ray.Direction.Dot(outwardNormal) < 0
	normal := outwardNormal
	if !frontFace {
		normal = outwardNormal.Negate()
	}
	return HitInfo{
		T:           t,
		Position:    h.ray.At(t),
		Normal:      normal,
		FrontFace:   frontFace,
		UV:          uv,
		Emission:    core.Black,
		Attenuation: core.White,
	}
}

// SetHit records a hit at t with the given unit outward normal and shrinks
// the search window to t. It returns false, recording nothing, when the
// installed filter rejects the hit.
func (h *HitRecord) SetHit(t float64, outwardNormal core.Vec3, uv core.Vec2) bool {
	info := h.newHitInfo(t, outwardNormal, uv)
	if h.accept != nil && !h.accept(&info) {
		return false
	}
	h.info = info
	h.hasHit = true
	h.interval.LimitMax(t)
	return true
}

// SetHitArbitrary records a hit with no meaningful normal or uv, as produced
// inside participating media
func (h *HitRecord) SetHitArbitrary(t float64) {
	h.info = h.newHitInfo(t, core.Vec3{}, core.Vec2{})
	h.hasHit = true
	h.interval.LimitMax(t)
}

// SetScatterRay continues the path from the hit position along direction
func (h *HitRecord) SetScatterRay(direction core.Vec3) {
	info := h.Hit()
	info.Scatter = Scatter{Kind: ScatterRay, ray: h.ray.Spawn(info.Position, direction)}
}

// SetScatterPDF continues the path by sampling density
func (h *HitRecord) SetScatterPDF(density pdf.PDF) {
	h.Hit().Scatter = Scatter{Kind: ScatterPDF, density: density}
}

// SetScatterAbsorb ends the path at this hit
func (h *HitRecord) SetScatterAbsorb() {
	h.Hit().Scatter = Scatter{Kind: ScatterAbsorb}
}

// GenerateScatter draws the next ray for a ScatterPDF hit from an equal mix
// of the material density and the light density. It returns the ray, the
// mixture density and the material density at the chosen direction. With no
// lights only the material density is used.
func (h *HitRecord) GenerateScatter(lights *pdf.ShapePDF) (core.Ray, float64, float64) {
	info := h.Hit()
	material := info.Scatter.PDF()
	origin := info.Position

	var direction core.Vec3
	if lights.IsEmpty() || h.sampler.Get1D() < 0.5 {
		direction = material.Generate(h.sampler)
	} else {
		direction = lights.Generate(origin, h.sampler)
	}

	materialProb := material.Prob(direction)
	mixtureProb := materialProb
	if !lights.IsEmpty() {
		mixtureProb = 0.5*materialProb + 0.5*lights.Prob(direction, origin)
	}
	return h.ray.Spawn(origin, direction), mixtureProb, materialProb
}
