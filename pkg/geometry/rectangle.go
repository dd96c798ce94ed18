package geometry

import (
	"math"
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// rect is an axis-aligned rectangle spanning [a0,a1]x[b0,b1] in the
// plane where the remaining coordinate equals k. The three exported
// rectangle types fix which axes are in-plane.
type rect struct {
	a0, a1, b0, b1, k   float64
	axisA, axisB, axisK int
	mat                 core.Material
}

// XYRectangle lies in a z = k plane.
type XYRectangle struct{ rect }

// XZRectangle lies in a y = k plane.
type XZRectangle struct{ rect }

// YZRectangle lies in an x = k plane.
type YZRectangle struct{ rect }

// NewXYRectangle creates a rectangle in the z = k plane
func NewXYRectangle(x0, x1, y0, y1, k float64, mat core.Material) *XYRectangle {
	return &XYRectangle{rect{a0: x0, a1: x1, b0: y0, b1: y1, k: k, axisA: 0, axisB: 1, axisK: 2, mat: mat}}
}

// NewXZRectangle creates a rectangle in the y = k plane
func NewXZRectangle(x0, x1, z0, z1, k float64, mat core.Material) *XZRectangle {
	return &XZRectangle{rect{a0: x0, a1: x1, b0: z0, b1: z1, k: k, axisA: 0, axisB: 2, axisK: 1, mat: mat}}
}

// NewYZRectangle creates a rectangle in the x = k plane
func NewYZRectangle(y0, y1, z0, z1, k float64, mat core.Material) *YZRectangle {
	return &YZRectangle{rect{a0: y0, a1: y1, b0: z0, b1: z1, k: k, axisA: 1, axisB: 2, axisK: 0, mat: mat}}
}

// point assembles a world-space point from in-plane coordinates
func (r *rect) point(a, b float64) core.Vec3 {
	var p core.Vec3
	set := func(axis int, val float64) {
		switch axis {
		case 0:
			p.X = val
		case 1:
			p.Y = val
		default:
			p.Z = val
		}
	}
	set(r.axisA, a)
	set(r.axisB, b)
	set(r.axisK, r.k)
	return p
}

// normal is the outward unit normal along the fixed axis
func (r *rect) normal() core.Vec3 {
	var n core.Vec3
	switch r.axisK {
	case 0:
		n.X = 1
	case 1:
		n.Y = 1
	default:
		n.Z = 1
	}
	return n
}

// Hit intersects the ray with the rectangle's plane and checks bounds.
func (r *rect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	dirK := ray.Direction.Axis(r.axisK)
	if math.Abs(dirK) < 1e-12 {
		return nil, false
	}
	t := (r.k - ray.Origin.Axis(r.axisK)) / dirK
	if t <= tMin || t >= tMax {
		return nil, false
	}

	a := ray.Origin.Axis(r.axisA) + t*ray.Direction.Axis(r.axisA)
	b := ray.Origin.Axis(r.axisB) + t*ray.Direction.Axis(r.axisB)
	if a < r.a0 || a > r.a1 || b < r.b0 || b > r.b1 {
		return nil, false
	}

	rec := &core.HitRecord{
		T:   t,
		P:   ray.At(t),
		Mat: r.mat,
		U:   (a - r.a0) / (r.a1 - r.a0),
		V:   (b - r.b0) / (r.b1 - r.b0),
	}
	rec.SetFaceNormal(ray, r.normal())
	return rec, true
}

// BoundingBox pads the flat dimension so the slab test cannot miss it.
func (r *rect) BoundingBox() core.AABB {
	box := core.EmptyAABB().
		ExpandPoint(r.point(r.a0, r.b0)).
		ExpandPoint(r.point(r.a1, r.b1))
	return box.Pad(0.0001)
}

// IsLight reports whether the material emits light
func (r *rect) IsLight() bool {
	return r.mat.IsLight()
}

// area of the rectangle
func (r *rect) area() float64 {
	return (r.a1 - r.a0) * (r.b1 - r.b0)
}

// PDFValue converts the area density to a solid-angle density at origin.
func (r *rect) PDFValue(origin, direction core.Vec3) float64 {
	rec, ok := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * r.area())
}

// Random returns a direction from origin to a uniform point on the rectangle
func (r *rect) Random(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	a := r.a0 + rnd.Float64()*(r.a1-r.a0)
	b := r.b0 + rnd.Float64()*(r.b1-r.b0)
	return r.point(a, b).Subtract(origin)
}
