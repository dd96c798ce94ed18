package geometry

import (
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// HittableList is a flat collection of hittables checked in order.
// It is used for the light set and as a building block before the
// hierarchy is built.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list over the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(obj core.Hittable) {
	l.Objects = append(l.Objects, obj)
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit checks every object and keeps the closest intersection.
func (l *HittableList) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax
	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, tMin, closestT); ok {
			closest = rec
			closestT = rec.T
		}
	}
	return closest, closest != nil
}

// BoundingBox unions the boxes of all objects
func (l *HittableList) BoundingBox() core.AABB {
	box := core.EmptyAABB()
	for _, obj := range l.Objects {
		box = box.Union(obj.BoundingBox())
	}
	return box
}

// IsLight reports whether any object is a light
func (l *HittableList) IsLight() bool {
	for _, obj := range l.Objects {
		if obj.IsLight() {
			return true
		}
	}
	return false
}

// PDFValue averages the densities of all objects, giving each equal
// selection weight.
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	sum := 0.0
	for _, obj := range l.Objects {
		sum += obj.PDFValue(origin, direction)
	}
	return sum / float64(len(l.Objects))
}

// Random samples a direction toward a uniformly chosen object
func (l *HittableList) Random(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(0, 1, 0)
	}
	return l.Objects[rnd.Intn(len(l.Objects))].Random(origin, rnd)
}
