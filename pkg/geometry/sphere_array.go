package geometry

import (
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// SphereArray groups many spheres under one hierarchy so large sphere
// fields stay cheap to intersect.
type SphereArray struct {
	spheres *HittableList
	bvh     *core.BVH
}

// NewSphereArray builds the hierarchy over the given spheres
func NewSphereArray(spheres []core.Hittable) *SphereArray {
	list := NewHittableList(spheres...)
	return &SphereArray{
		spheres: list,
		bvh:     core.NewBVH(spheres),
	}
}

// Hit delegates to the hierarchy
func (a *SphereArray) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return a.bvh.Hit(r, tMin, tMax)
}

// BoundingBox returns the hierarchy bounds
func (a *SphereArray) BoundingBox() core.AABB {
	return a.bvh.BoundingBox()
}

// IsLight reports false; arrays are never sampled as lights even when
// a member emits.
func (a *SphereArray) IsLight() bool {
	return false
}

// PDFValue averages the member densities
func (a *SphereArray) PDFValue(origin, direction core.Vec3) float64 {
	return a.spheres.PDFValue(origin, direction)
}

// Random samples a direction toward a uniformly chosen member
func (a *SphereArray) Random(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	return a.spheres.Random(origin, rnd)
}
