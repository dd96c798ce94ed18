package geometry

import (
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// Box is an axis-aligned box assembled from six rectangles and indexed
// by its own small hierarchy.
type Box struct {
	faces *HittableList
	bvh   *core.BVH
	bbox  core.AABB
}

// NewBox creates a box centered at center with the given edge lengths
func NewBox(center, size core.Vec3, mat core.Material) *Box {
	half := size.Multiply(0.5)
	min := center.Subtract(half)
	max := center.Add(half)

	faces := NewHittableList(
		NewXYRectangle(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewXYRectangle(min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewXZRectangle(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewXZRectangle(min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewYZRectangle(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewYZRectangle(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)

	return &Box{
		faces: faces,
		bvh:   core.NewBVH(faces.Objects),
		bbox:  core.NewAABB(min, max).Pad(0.0001),
	}
}

// Hit delegates to the face hierarchy
func (b *Box) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.bvh.Hit(r, tMin, tMax)
}

// BoundingBox returns the box bounds
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}

// IsLight reports whether any face emits light
func (b *Box) IsLight() bool {
	return b.faces.IsLight()
}

// PDFValue averages the face densities
func (b *Box) PDFValue(origin, direction core.Vec3) float64 {
	return b.faces.PDFValue(origin, direction)
}

// Random samples a direction toward a uniformly chosen face
func (b *Box) Random(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	return b.faces.Random(origin, rnd)
}
