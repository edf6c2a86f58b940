package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Atlas holds optional textures that decorate an object independently of
// its material
type Atlas struct {
	Transparency ColorSource // red channel ≥ 0.5 cuts the surface away
	Attenuation  ColorSource
	Emission     ColorSource
}

// ShouldRender reports whether the surface exists at info. It has the shape
// of a geometry.AcceptFunc.
func (a *Atlas) ShouldRender(info *geometry.HitInfo) bool {
	if a == nil || a.Transparency == nil {
		return true
	}
	return a.Transparency.Evaluate(info.UV, info.Position).X < 0.5
}

// Decorate overrides the attenuation, and the emission on front faces, after
// the material has scattered
func (a *Atlas) Decorate(rec *geometry.HitRecord) {
	if a == nil {
		return
	}
	info := rec.Hit()
	if a.Attenuation != nil {
		info.Attenuation = a.Attenuation.Evaluate(info.UV, info.Position)
	}
	if a.Emission != nil && info.FrontFace {
		info.Emission = a.Emission.Evaluate(info.UV, info.Position)
	}
}

// Object pairs a shape with the material that scatters at its hits
type Object struct {
	Shape    geometry.Shape
	Material Material
	Atlas    *Atlas // optional
}

// NewObject creates an object; atlas may be nil
func NewObject(shape geometry.Shape, material Material, atlas *Atlas) *Object {
	return &Object{Shape: shape, Material: material, Atlas: atlas}
}

// Hit implements geometry.Shape. The material only runs when this object's
// shape recorded the new closest hit.
func (o *Object) Hit(rec *geometry.HitRecord) bool {
	var hit bool
	if o.Atlas != nil && o.Atlas.Transparency != nil {
		previous := rec.SetAccept(o.Atlas.ShouldRender)
		hit = o.Shape.Hit(rec)
		rec.SetAccept(previous)
	} else {
		hit = o.Shape.Hit(rec)
	}
	if !hit {
		return false
	}

	o.Material.Scatter(rec)
	o.Atlas.Decorate(rec)
	return true
}

// BoundingBox implements geometry.Shape
func (o *Object) BoundingBox() core.AABB {
	return o.Shape.BoundingBox()
}
