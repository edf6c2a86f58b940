package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates a small diffuse sphere resting on a huge ground
// sphere, lit only by the sky
func NewDefaultScene() *Scene {
	builder := NewWorldBuilder()
	builder.SetBackground(NewSkyGradient())

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))

	builder.AddObject(geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000), ground, nil)
	builder.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), center, nil)

	return &Scene{
		World: builder.Build(),
		CameraConfig: CameraConfig{
			LookFrom: core.NewVec3(0, 0, 0),
			LookAt:   core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     90,
		},
		SamplingConfig: SamplingConfig{
			AspectRatio:     16.0 / 9.0,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}
