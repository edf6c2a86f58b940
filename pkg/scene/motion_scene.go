package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMotionScene creates a field of small spheres on a checkered ground.
// Diffuse spheres bounce upward during the exposure, blurring them.
func NewMotionScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))
	builder := NewWorldBuilder()
	builder.SetBackground(NewSkyGradient())

	checker := material.NewCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	builder.AddObject(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), material.NewTexturedLambertian(checker), nil)

	randomColor := func() core.Vec3 {
		return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
	}

	for a := -6; a < 6; a++ {
		for b := -6; b < 6; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			sphere := geometry.NewSphere(center, 0.2)
			switch choose := random.Float64(); {
			case choose < 0.8:
				albedo := randomColor().MultiplyVec(randomColor())
				bounce := core.NewVec3(0, 0.5*random.Float64(), 0)
				builder.AddObject(geometry.NewMoving(sphere, bounce), material.NewLambertian(albedo), nil)
			case choose < 0.95:
				albedo := randomColor().Multiply(0.5).Add(core.Gray(0.5))
				builder.AddObject(sphere, material.NewMetal(albedo, 0.5*random.Float64()), nil)
			default:
				builder.AddObject(sphere, material.NewDielectric(1.5), nil)
			}
		}
	}

	builder.AddObject(geometry.NewSphere(core.NewVec3(0, 1, 0), 1), material.NewDielectric(1.5), nil)
	builder.AddObject(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1), material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)), nil)
	builder.AddObject(geometry.NewSphere(core.NewVec3(4, 1, 0), 1), material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0), nil)

	return &Scene{
		World: builder.Build(),
		CameraConfig: CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			DefocusAngle:  0.6,
			FocusDistance: 10,
		},
		SamplingConfig: SamplingConfig{
			AspectRatio:     16.0 / 9.0,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}
