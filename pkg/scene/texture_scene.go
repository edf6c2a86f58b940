package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTextureScene creates spheres showing each texture kind on a checkered
// ground. The image sphere uses options.TexturePath when set and a gradient
// otherwise.
func NewTextureScene(options Options) (*Scene, error) {
	builder := NewWorldBuilder()
	builder.SetBackground(NewSkyGradient())

	checker := material.NewCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	builder.AddObject(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), material.NewTexturedLambertian(checker), nil)

	marble := material.NewNoiseTexture(material.NewPerlin(rand.New(rand.NewSource(options.Seed))), 4)
	builder.AddObject(geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1), material.NewTexturedLambertian(marble), nil)

	var image material.ColorSource = material.NewGradientTexture(16, 64, core.NewVec3(0.9, 0.3, 0.1), core.NewVec3(0.1, 0.2, 0.8))
	if options.TexturePath != "" {
		loaded, err := loaders.LoadImageTexture(options.TexturePath)
		if err != nil {
			return nil, err
		}
		image = loaded
	}
	builder.AddObject(geometry.NewSphere(core.NewVec3(0, 1, 0), 1), material.NewTexturedLambertian(image), nil)

	// Sphere with horizontal bands cut away, textured by the atlas
	bands := material.NewCheckerTexture(0.25, core.White, core.Black)
	builder.AddObject(geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1), material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1),
		&material.Atlas{Transparency: &stripes{bands}})

	// Small textured pyramid in front
	pyramid, err := geometry.NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(-0.5, 0, 0.5), core.NewVec3(0.5, 0, 0.5), core.NewVec3(0.5, 0, -0.5),
			core.NewVec3(-0.5, 0, -0.5), core.NewVec3(0, 0.8, 0),
		},
		[]int{0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4},
		&geometry.TriangleMeshOptions{
			UVs: []core.Vec2{
				core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0.5, 1),
			},
			Offset: core.NewVec3(0, 0, 2),
		},
	)
	if err != nil {
		return nil, err
	}
	builder.AddObject(pyramid, material.NewTexturedLambertian(image), nil)

	return &Scene{
		World: builder.Build(),
		CameraConfig: CameraConfig{
			LookFrom: core.NewVec3(0, 2, 12),
			LookAt:   core.NewVec3(0, 0.8, 0),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     30,
		},
		SamplingConfig: SamplingConfig{
			AspectRatio:     16.0 / 9.0,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}, nil
}

// stripes keeps only the y component of the checker lattice so the cut
// becomes horizontal bands
type stripes struct {
	checker *material.CheckerTexture
}

func (s *stripes) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.checker.Evaluate(uv, core.NewVec3(0, point.Y, 0))
}
