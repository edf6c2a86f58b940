package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewBox creates the closed axis-aligned box with opposite corners a and b as
// six outward-facing quads. Rotate or translate it with the transform wrappers.
func NewBox(a, b core.Vec3) *ShapeList {
	lo := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	hi := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	return NewShapeList(
		NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy),          // front
		NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy), // right
		NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy), // back
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy),          // left
		NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate()), // top
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz),          // bottom
	)
}
