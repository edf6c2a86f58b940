package core

import "math"

// ONB is an orthonormal basis whose W axis follows a given direction
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a basis with W along n
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	u := a.Cross(w).Normalize()
	v := w.Cross(u)
	return ONB{U: u, V: v, W: w}
}

// Local converts coordinates expressed in the basis to world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
