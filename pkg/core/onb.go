package core

import "math"

// ONB is an orthonormal basis built around a W axis, used to map
// hemisphere samples from local space into world space.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis with W aligned to n.
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector from basis coordinates into world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
