package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *World
	CameraConfig   CameraConfig
	SamplingConfig SamplingConfig
}

// CameraConfig places the camera. The renderer turns it into rays once the
// image size is known.
type CameraConfig struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float64 // Vertical field of view in degrees
	DefocusAngle  float64 // Cone angle of rays through each pixel in degrees; 0 disables depth of field
	FocusDistance float64 // Distance to the plane in focus; 0 means the LookAt distance
}

// SamplingConfig holds the render settings a scene was designed for
type SamplingConfig struct {
	AspectRatio     float64 // Width over height
	SamplesPerPixel int
	MaxDepth        int
}

// World is the immutable result of scene assembly. It is safe to share
// across render workers.
type World struct {
	Objects    *geometry.BVH
	Lights     *pdf.ShapePDF
	Background Background
}

// Hit finds the closest surface along ray and lets its material scatter
func (w *World) Hit(ray core.Ray, sampler core.Sampler) (*geometry.HitRecord, bool) {
	rec := geometry.NewHitRecord(ray, sampler)
	return rec, w.Objects.Hit(rec)
}

// BackgroundColor returns the radiance of a ray that escapes the scene
func (w *World) BackgroundColor(ray core.Ray) core.Vec3 {
	if w.Background == nil {
		return core.Black
	}
	return w.Background.Color(ray)
}

// WorldBuilder collects shapes and lights, then builds the BVH once
type WorldBuilder struct {
	objects    []geometry.Shape
	lights     *pdf.ShapePDF
	background Background
}

// NewWorldBuilder creates an empty builder with a black background
func NewWorldBuilder() *WorldBuilder {
	return &WorldBuilder{lights: pdf.NewShapePDF()}
}

// Add adds a shape that already scatters, such as a material.Object
func (b *WorldBuilder) Add(shape geometry.Shape) {
	b.objects = append(b.objects, shape)
}

// AddObject pairs shape with a material and an optional atlas and adds it
func (b *WorldBuilder) AddObject(shape geometry.Shape, mat material.Material, atlas *material.Atlas) {
	b.Add(material.NewObject(shape, mat, atlas))
}

// AddLight registers a shape for light importance sampling. It does not add
// geometry; the emitting object is added separately.
func (b *WorldBuilder) AddLight(light pdf.ShapePDFProvider) {
	b.lights.Add(light)
}

// SetBackground sets the radiance of escaping rays
func (b *WorldBuilder) SetBackground(background Background) {
	b.background = background
}

// Build creates the World. The builder should not be used afterwards.
func (b *WorldBuilder) Build() *World {
	return &World{
		Objects:    geometry.NewBVH(b.objects),
		Lights:     b.lights,
		Background: b.background,
	}
}

// Background gives the radiance arriving along rays that hit nothing
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground is the same color in every direction
type SolidBackground struct {
	Value core.Vec3
}

// Color implements Background
func (s SolidBackground) Color(ray core.Ray) core.Vec3 {
	return s.Value
}

// SkyGradient blends from Horizon below to Zenith above by direction height
type SkyGradient struct {
	Horizon core.Vec3
	Zenith  core.Vec3
}

// NewSkyGradient creates the usual white-to-blue sky
func NewSkyGradient() SkyGradient {
	return SkyGradient{Horizon: core.White, Zenith: core.NewVec3(0.5, 0.7, 1.0)}
}

// Color implements Background
func (s SkyGradient) Color(ray core.Ray) core.Vec3 {
	a := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return s.Horizon.Multiply(1.0 - a).Add(s.Zenith.Multiply(a))
}
