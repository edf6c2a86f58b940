package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// Shape is anything a ray can hit. Hit reports whether it recorded a hit
// closer than the record's current window. Implementations must leave the
// record's ray as they found it.
type Shape interface {
	Hit(rec *HitRecord) bool
	BoundingBox() core.AABB
}

// Empty is a shape with no surface. It pads BVH leaves.
type Empty struct{}

// Hit implements Shape
func (Empty) Hit(rec *HitRecord) bool {
	return false
}

// BoundingBox implements Shape
func (Empty) BoundingBox() core.AABB {
	return core.EmptyAABB
}

// ShapeList tests every member in turn
type ShapeList struct {
	Shapes []Shape
	box    core.AABB
}

// NewShapeList creates a list from shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	list := &ShapeList{box: core.EmptyAABB}
	for _, s := range shapes {
		list.Add(s)
	}
	return list
}

// Add appends a shape
func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.box = l.box.Union(shape.BoundingBox())
}

// Hit implements Shape. Every member is visited; the shrinking window keeps
// the closest.
func (l *ShapeList) Hit(rec *HitRecord) bool {
	hit := false
	for _, s := range l.Shapes {
		if s.Hit(rec) {
			hit = true
		}
	}
	return hit
}

// BoundingBox implements Shape
func (l *ShapeList) BoundingBox() core.AABB {
	return l.box
}
