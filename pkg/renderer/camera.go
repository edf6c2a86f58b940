package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Camera generates primary rays for a fixed image size and stratification
type Camera struct {
	center       core.Vec3
	upperLeft    core.Vec3 // World position of the top-left corner of the viewport
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	defocusAngle float64
	sqrtSamples  int
}

// NewCamera builds a camera for a width×height image whose pixels are split
// into a sqrtSamples×sqrtSamples grid of strata
func NewCamera(config scene.CameraConfig, width, height, sqrtSamples int) *Camera {
	if sqrtSamples < 1 {
		sqrtSamples = 1
	}
	up := config.Up
	if up == (core.Vec3{}) {
		up = core.NewVec3(0, 1, 0)
	}

	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = config.LookFrom.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2) * focusDist
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal camera basis
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(focusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	defocusRadius := focusDist * math.Tan(config.DefocusAngle/2*math.Pi/180.0)

	return &Camera{
		center:       config.LookFrom,
		upperLeft:    upperLeft,
		pixelDeltaU:  viewportU.Multiply(1.0 / float64(width)),
		pixelDeltaV:  viewportV.Multiply(1.0 / float64(height)),
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		defocusAngle: config.DefocusAngle,
		sqrtSamples:  sqrtSamples,
	}
}

// GetRay returns a ray through pixel (i, j), jittered inside stratum
// (si, sj). Row 0 is the top of the image. The ray time is uniform in [0, 1).
func (c *Camera) GetRay(i, j, si, sj int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	n := float64(c.sqrtSamples)
	return c.rayThrough(
		float64(i)+(float64(si)+jitter.X)/n,
		float64(j)+(float64(sj)+jitter.Y)/n,
		sampler)
}

// GetPixelRay returns a ray through pixel (i, j) jittered over the whole pixel
func (c *Camera) GetPixelRay(i, j int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	return c.rayThrough(float64(i)+jitter.X, float64(j)+jitter.Y, sampler)
}

// rayThrough aims at the viewport position (px, py) measured in pixels
func (c *Camera) rayThrough(px, py float64, sampler core.Sampler) core.Ray {
	pixelSample := c.upperLeft.
		Add(c.pixelDeltaU.Multiply(px)).
		Add(c.pixelDeltaV.Multiply(py))

	origin := c.center
	if c.defocusAngle > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = origin.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// SqrtSamples returns the side length of the stratum grid
func (c *Camera) SqrtSamples() int {
	return c.sqrtSamples
}
