package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

var cornellCamera = CameraConfig{
	LookFrom: core.NewVec3(278, 278, -800), // Position camera outside the box looking in
	LookAt:   core.NewVec3(278, 278, 0),    // Look at the center of the box
	Up:       core.NewVec3(0, 1, 0),
	VFov:     40.0,
}

// addCornellWalls adds the five walls and returns the white material
func addCornellWalls(builder *WorldBuilder) material.Material {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Left wall (green) - YZ plane at x=boxSize
	builder.AddObject(geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize)), green, nil)
	// Right wall (red) - YZ plane at x=0
	builder.AddObject(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize)), red, nil)
	// Floor
	builder.AddObject(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize)), white, nil)
	// Ceiling
	builder.AddObject(geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize)), white, nil)
	// Back wall
	builder.AddObject(geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0)), white, nil)

	return white
}

// addCeilingLight adds an emitting quad facing down and registers it for light sampling
func addCeilingLight(builder *WorldBuilder, corner, u, v core.Vec3, emission float64) {
	light := geometry.NewQuad(corner, u, v)
	builder.AddObject(light, material.NewEmissive(core.Gray(emission)), nil)
	builder.AddLight(light)
}

// NewCornellScene creates a classic Cornell box scene with quad walls and area lighting
func NewCornellScene() *Scene {
	builder := NewWorldBuilder()
	white := addCornellWalls(builder)

	// u then v of (-x, -z) gives a downward normal
	addCeilingLight(builder,
		core.NewVec3(343, boxSize-1, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		15,
	)

	// Tall box turned 15° and moved toward the back left
	tall := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165)), 15),
		core.NewVec3(265, 0, 295),
	)
	builder.AddObject(tall, white, nil)

	// Glass sphere, also sampled as a light so caustics converge
	glass := geometry.NewSphere(core.NewVec3(190, 90, 190), 90)
	builder.AddObject(glass, material.NewDielectric(1.5), nil)
	builder.AddLight(glass)

	return &Scene{
		World:        builder.Build(),
		CameraConfig: cornellCamera,
		SamplingConfig: SamplingConfig{
			AspectRatio:     1.0,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}
