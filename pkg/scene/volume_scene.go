package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewVolumeScene creates a Cornell box holding a box of dark smoke and a box
// of white fog
func NewVolumeScene() *Scene {
	builder := NewWorldBuilder()
	addCornellWalls(builder)

	// Wider, dimmer light so the media are evenly lit
	addCeilingLight(builder,
		core.NewVec3(443, boxSize-1, 432),
		core.NewVec3(-330, 0, 0),
		core.NewVec3(0, 0, -305),
		7,
	)

	smoke := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165)), 15),
		core.NewVec3(265, 0, 295),
	)
	fog := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165)), -18),
		core.NewVec3(130, 0, 65),
	)

	builder.AddObject(geometry.NewConstantMedium(smoke, 0.01), material.NewIsotropic(core.Black), nil)
	builder.AddObject(geometry.NewConstantMedium(fog, 0.01), material.NewIsotropic(core.White), nil)

	return &Scene{
		World:        builder.Build(),
		CameraConfig: cornellCamera,
		SamplingConfig: SamplingConfig{
			AspectRatio:     1.0,
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
	}
}
