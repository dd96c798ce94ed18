package geometry

import (
	"math"
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// Sphere is a sphere with a center, radius and material.
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    core.Material
}

// NewSphere creates a sphere
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Hit solves the quadratic for the closest intersection in range.
func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := r.Origin.Subtract(s.Center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	rec := &core.HitRecord{T: root, P: r.At(root), Mat: s.Mat}
	outwardNormal := rec.P.Subtract(s.Center).Divide(s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	return rec, true
}

// sphereUV maps a unit vector to equirectangular coordinates.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the box enclosing the sphere
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// IsLight reports whether the material emits light
func (s *Sphere) IsLight() bool {
	return s.Mat.IsLight()
}

// PDFValue is the solid-angle density of sampling the sphere's cone
// from origin. An interior origin sees the sphere over the full sphere
// of directions, so the density there is uniform.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	distSquared := s.Center.Subtract(origin).LengthSquared()
	if distSquared <= s.Radius*s.Radius {
		return 1 / (4 * math.Pi)
	}

	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !ok {
		return 0
	}
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random samples a direction from origin toward the sphere, uniform
// over the subtended cone. From an interior origin every direction
// hits the sphere, so the sample is uniform over all directions, and
// PDFValue reports the matching density.
func (s *Sphere) Random(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distSquared := toCenter.LengthSquared()
	if distSquared <= s.Radius*s.Radius {
		return core.RandomUnitVector(rnd)
	}
	uvw := core.NewONB(toCenter)
	return uvw.Local(core.RandomToSphere(s.Radius, distSquared, rnd))
}
