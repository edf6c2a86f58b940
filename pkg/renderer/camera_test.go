package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// fixedSampler returns the same value for every dimension
type fixedSampler struct{ v float64 }

func (s fixedSampler) Get1D() float64   { return s.v }
func (s fixedSampler) Get2D() core.Vec2 { return core.NewVec2(s.v, s.v) }
func (s fixedSampler) Get3D() core.Vec3 { return core.NewVec3(s.v, s.v, s.v) }

func forwardConfig() scene.CameraConfig {
	return scene.CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     90,
	}
}

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestCameraGetRay(t *testing.T) {
	// A 90 degree fov at focus distance 1 spans [-1,1]² on the z=-1 plane
	tests := []struct {
		name        string
		sqrtSamples int
		i, j        int
		si, sj      int
		jitter      float64
		expected    core.Vec3
	}{
		{"Center", 1, 0, 0, 0, 0, 0.5, core.NewVec3(0, 0, -1)},
		{"Top left corner", 1, 0, 0, 0, 0, 0, core.NewVec3(-1, 1, -1)},
		{"Second stratum column", 2, 0, 0, 1, 0, 0, core.NewVec3(0, 1, -1)},
		{"Last stratum", 2, 0, 0, 1, 1, 0.5, core.NewVec3(0.5, -0.5, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(forwardConfig(), 1, 1, tt.sqrtSamples)
			ray := camera.GetRay(tt.i, tt.j, tt.si, tt.sj, fixedSampler{tt.jitter})
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("origin = %v, want the camera center", ray.Origin)
			}
			if !vecClose(ray.Direction, tt.expected, 1e-9) {
				t.Errorf("direction = %v, want %v", ray.Direction, tt.expected)
			}
		})
	}
}

func TestCameraRowsRunTopToBottom(t *testing.T) {
	camera := NewCamera(forwardConfig(), 4, 4, 1)
	sampler := fixedSampler{0.5}

	top := camera.GetRay(1, 0, 0, 0, sampler)
	bottom := camera.GetRay(1, 3, 0, 0, sampler)
	if top.Direction.Y <= bottom.Direction.Y {
		t.Errorf("row 0 should look higher than row 3: %v vs %v", top.Direction, bottom.Direction)
	}

	left := camera.GetRay(0, 1, 0, 0, sampler)
	right := camera.GetRay(3, 1, 0, 0, sampler)
	if left.Direction.X >= right.Direction.X {
		t.Errorf("column 0 should look further left than column 3: %v vs %v", left.Direction, right.Direction)
	}
}

func TestCameraJitterStaysInStratum(t *testing.T) {
	const n = 4
	camera := NewCamera(forwardConfig(), 1, 1, n)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	cell := 2.0 / n

	for sj := 0; sj < n; sj++ {
		for si := 0; si < n; si++ {
			minX, maxX := -1+float64(si)*cell, -1+float64(si+1)*cell
			minY, maxY := 1-float64(sj+1)*cell, 1-float64(sj)*cell
			for k := 0; k < 50; k++ {
				ray := camera.GetRay(0, 0, si, sj, sampler)
				d := ray.Direction
				if d.X < minX || d.X > maxX || d.Y < minY || d.Y > maxY {
					t.Fatalf("stratum (%d,%d): direction %v outside [%g,%g]x[%g,%g]",
						si, sj, d, minX, maxX, minY, maxY)
				}
				if ray.Time < 0 || ray.Time >= 1 {
					t.Fatalf("ray time %f outside [0,1)", ray.Time)
				}
			}
		}
	}
}

func TestCameraPixelRayCoversWholePixel(t *testing.T) {
	// A 2x2 image; pixel (1, 0) spans [0,1]x[0,1] on the z=-1 plane
	camera := NewCamera(forwardConfig(), 2, 2, 3)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	var minX, maxX, minY, maxY = math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for k := 0; k < 2000; k++ {
		d := camera.GetPixelRay(1, 0, sampler).Direction
		if d.X < 0 || d.X > 1 || d.Y < 0 || d.Y > 1 {
			t.Fatalf("direction %v outside pixel (1,0)", d)
		}
		minX, maxX = math.Min(minX, d.X), math.Max(maxX, d.X)
		minY, maxY = math.Min(minY, d.Y), math.Max(maxY, d.Y)
	}
	// The stratum grid must not restrict whole-pixel jitter
	if minX > 0.05 || maxX < 0.95 || minY > 0.05 || maxY < 0.95 {
		t.Errorf("samples spanned [%f,%f]x[%f,%f], want the full pixel", minX, maxX, minY, maxY)
	}
}

func TestCameraDefocus(t *testing.T) {
	config := scene.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -5),
		VFov:          40,
		DefocusAngle:  10,
		FocusDistance: 5,
	}
	camera := NewCamera(config, 8, 8, 1)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	radius := 5 * math.Tan(5*math.Pi/180)

	moved := false
	for k := 0; k < 200; k++ {
		ray := camera.GetRay(3, 5, 0, 0, sampler)
		if ray.Origin.Length() > radius+1e-9 {
			t.Fatalf("origin %v outside the lens of radius %f", ray.Origin, radius)
		}
		if ray.Origin.Z != 0 {
			t.Fatalf("lens sample %v should lie in the camera plane", ray.Origin)
		}
		if ray.Origin.Length() > 1e-6 {
			moved = true
		}
		// Every ray passes through the focus plane
		if focus := ray.At(1); math.Abs(focus.Z+5) > 1e-9 {
			t.Fatalf("ray reaches z=%f at t=1, want -5", focus.Z)
		}
	}
	if !moved {
		t.Error("defocus never moved the ray origin")
	}
}

func TestCameraDefaultUp(t *testing.T) {
	withUp := NewCamera(forwardConfig(), 3, 2, 1)
	config := forwardConfig()
	config.Up = core.Vec3{}
	withoutUp := NewCamera(config, 3, 2, 1)

	sampler := fixedSampler{0.25}
	a := withUp.GetRay(2, 1, 0, 0, sampler)
	b := withoutUp.GetRay(2, 1, 0, 0, sampler)
	if a.Direction != b.Direction {
		t.Errorf("zero up vector should default to +Y: %v vs %v", a.Direction, b.Direction)
	}
}
