package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Translate offsets a shape. The wrapped shape sees the ray in its own space.
type Translate struct {
	Shape  Shape
	Offset core.Vec3
	box    core.AABB
}

// NewTranslate moves shape by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{
		Shape:  shape,
		Offset: offset,
		box:    shape.BoundingBox().Moved(offset),
	}
}

// Hit implements Shape
func (tr *Translate) Hit(rec *HitRecord) bool {
	ray := rec.Ray()
	local := ray
	local.Origin = ray.Origin.Subtract(tr.Offset)

	rec.SetRay(local)
	hit := tr.Shape.Hit(rec)
	rec.SetRay(ray)

	if hit {
		info := rec.Hit()
		info.Position = info.Position.Add(tr.Offset)
	}
	return hit
}

// BoundingBox implements Shape
func (tr *Translate) BoundingBox() core.AABB {
	return tr.box
}

// Prob forwards to the wrapped shape, which must be a pdf.ShapePDFProvider
func (tr *Translate) Prob(origin, direction core.Vec3) float64 {
	return tr.provider().Prob(origin.Subtract(tr.Offset), direction)
}

// Generate forwards to the wrapped shape, which must be a pdf.ShapePDFProvider
func (tr *Translate) Generate(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return tr.provider().Generate(origin.Subtract(tr.Offset), sampler)
}

func (tr *Translate) provider() pdf.ShapePDFProvider {
	p, ok := tr.Shape.(pdf.ShapePDFProvider)
	if !ok {
		panic("geometry: translated shape cannot be sampled as a light")
	}
	return p
}

// Rotate turns a shape about an axis through the origin
type Rotate struct {
	Shape   Shape
	toLocal r3.Rotation
	toWorld r3.Rotation
	box     core.AABB
}

// NewRotate rotates shape by degrees about axis, counter-clockwise when
// looking down the axis toward the origin
func NewRotate(shape Shape, axis core.Vec3, degrees float64) *Rotate {
	radians := degrees * math.Pi / 180
	r := &Rotate{
		Shape:   shape,
		toLocal: r3.NewRotation(-radians, toR3(axis)),
		toWorld: r3.NewRotation(radians, toR3(axis)),
	}

	inner := shape.BoundingBox()
	if inner.IsEmpty() {
		r.box = inner
		return r
	}
	box := core.EmptyAABB
	for _, corner := range inner.Corners() {
		box = box.Union(core.NewAABBFromPoints(r.world(corner)))
	}
	r.box = box
	return r
}

// NewRotateY rotates shape by degrees about the Y axis
func NewRotateY(shape Shape, degrees float64) *Rotate {
	return NewRotate(shape, core.NewVec3(0, 1, 0), degrees)
}

// Hit implements Shape
func (r *Rotate) Hit(rec *HitRecord) bool {
	ray := rec.Ray()
	local := ray
	local.Origin = r.local(ray.Origin)
	local.Direction = r.local(ray.Direction)

	rec.SetRay(local)
	hit := r.Shape.Hit(rec)
	rec.SetRay(ray)

	if hit {
		info := rec.Hit()
		info.Position = r.world(info.Position)
		info.Normal = r.world(info.Normal)
	}
	return hit
}

// BoundingBox implements Shape
func (r *Rotate) BoundingBox() core.AABB {
	return r.box
}

func (r *Rotate) local(v core.Vec3) core.Vec3 {
	return fromR3(r.toLocal.Rotate(toR3(v)))
}

func (r *Rotate) world(v core.Vec3) core.Vec3 {
	return fromR3(r.toWorld.Rotate(toR3(v)))
}

func toR3(v core.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// Moving displaces a shape linearly with ray time: at time t the shape sits
// at its rest position plus Velocity·t
type Moving struct {
	Shape    Shape
	Velocity core.Vec3
	box      core.AABB
}

// NewMoving creates a shape that travels by velocity over one unit of time
func NewMoving(shape Shape, velocity core.Vec3) *Moving {
	start := shape.BoundingBox()
	return &Moving{
		Shape:    shape,
		Velocity: velocity,
		box:      start.Union(start.Moved(velocity)),
	}
}

// Hit implements Shape
func (m *Moving) Hit(rec *HitRecord) bool {
	ray := rec.Ray()
	shift := m.Velocity.Multiply(ray.Time)
	local := ray
	local.Origin = ray.Origin.Subtract(shift)

	rec.SetRay(local)
	hit := m.Shape.Hit(rec)
	rec.SetRay(ray)

	if hit {
		info := rec.Hit()
		info.Position = info.Position.Add(shift)
	}
	return hit
}

// BoundingBox implements Shape
func (m *Moving) BoundingBox() core.AABB {
	return m.box
}
