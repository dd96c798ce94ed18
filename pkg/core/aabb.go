package core

import "math"

// AABB is an axis-aligned bounding box defined by its min and max corners.
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates a bounding box from two corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an inverted box that unions as the identity.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// Hit tests the ray against the box with the slab method.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1 / r.Direction.Axis(axis)
		t0 := (b.Min.Axis(axis) - r.Origin.Axis(axis)) * invD
		t1 := (b.Max.Axis(axis) - r.Origin.Axis(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing both boxes
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: NewVec3(
			math.Min(b.Min.X, other.Min.X),
			math.Min(b.Min.Y, other.Min.Y),
			math.Min(b.Min.Z, other.Min.Z),
		),
		Max: NewVec3(
			math.Max(b.Max.X, other.Max.X),
			math.Max(b.Max.Y, other.Max.Y),
			math.Max(b.Max.Z, other.Max.Z),
		),
	}
}

// ExpandPoint grows the box to include a point
func (b AABB) ExpandPoint(p Vec3) AABB {
	return AABB{
		Min: NewVec3(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: NewVec3(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// Center returns the center point of the box
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// LongestAxis returns the axis index with the largest extent
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

// Pad returns a box grown by delta on every side. Flat boxes (axis
// aligned rectangles) need this to survive the slab test.
func (b AABB) Pad(delta float64) AABB {
	d := NewVec3(delta, delta, delta)
	return AABB{Min: b.Min.Subtract(d), Max: b.Max.Add(d)}
}
