package scene

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewOBJScene loads options.OBJPath and stands the mesh on the floor of the
// Cornell box
func NewOBJScene(options Options) (*Scene, error) {
	if options.OBJPath == "" {
		return nil, errors.New("the obj scene needs a mesh path")
	}

	mesh, err := loaders.LoadOBJ(options.OBJPath, &loaders.OBJOptions{
		FitInside: core.NewAABBFromPoints(core.NewVec3(110, 0, 110), core.NewVec3(445, 400, 445)),
		Anchor:    core.NewVec3(0.5, 0, 0.5),
	})
	if err != nil {
		return nil, err
	}

	builder := NewWorldBuilder()
	addCornellWalls(builder)
	addCeilingLight(builder,
		core.NewVec3(343, boxSize-1, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		15,
	)
	builder.AddObject(mesh, material.NewLambertian(core.NewVec3(0.8, 0.55, 0.3)), nil)

	return &Scene{
		World:        builder.Build(),
		CameraConfig: cornellCamera,
		SamplingConfig: SamplingConfig{
			AspectRatio:     1.0,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}, nil
}
