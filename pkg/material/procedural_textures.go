package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates two colors on a 3D lattice of cubes
type CheckerTexture struct {
	Even     ColorSource
	Odd      ColorSource
	invScale float64
}

// NewCheckerTexture creates a checker with cubes of side scale
func NewCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{
		Even:     NewSolidColor(even),
		Odd:      NewSolidColor(odd),
		invScale: 1.0 / scale,
	}
}

// Evaluate picks a color by the parity of the cube containing point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(point.X * c.invScale))
	y := int(math.Floor(point.Y * c.invScale))
	z := int(math.Floor(point.Z * c.invScale))
	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

const perlinPointCount = 256

// Perlin is a gradient noise generator over random unit vectors
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds the gradient table and permutations from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.NewVec3(
			random.Float64()*2-1,
			random.Float64()*2-1,
			random.Float64()*2-1,
		).Normalize()
	}
	for _, perm := range []*[perlinPointCount]int{&p.permX, &p.permY, &p.permZ} {
		for i := range perm {
			perm[i] = i
		}
		random.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	}
	return p
}

// Noise returns smoothed gradient noise at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	// Hermite smoothing of the interpolation weights
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				gradient := p.gradients[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
				weight := core.NewVec3(u-float64(di), v-float64(dj), w-float64(dk))
				accum += lerpWeight(di, uu) * lerpWeight(dj, vv) * lerpWeight(dk, ww) * gradient.Dot(weight)
			}
		}
	}
	return accum
}

func lerpWeight(corner int, t float64) float64 {
	if corner == 1 {
		return t
	}
	return 1 - t
}

// Turbulence sums depth octaves of noise with halving weights
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// NoiseTexture is a gray marble pattern driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Evaluate returns a gray level of 0.5·(1 + sin(scale·z + 10·turbulence))
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Gray(0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, 7))))
}
