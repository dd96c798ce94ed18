package core

import (
	"math"
	"math/rand"
)

// RandomInUnitSphere returns a random point inside the unit sphere
// using rejection sampling.
func RandomInUnitSphere(rnd *rand.Rand) Vec3 {
	for {
		p := NewVec3(rnd.Float64()*2-1, rnd.Float64()*2-1, rnd.Float64()*2-1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed unit vector.
func RandomUnitVector(rnd *rand.Rand) Vec3 {
	z := rnd.Float64()*2 - 1
	phi := rnd.Float64() * 2 * math.Pi
	r := math.Sqrt(1 - z*z)
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomCosineDirection returns a direction on the z-up hemisphere
// with density cos(theta)/pi.
func RandomCosineDirection(rnd *rand.Rand) Vec3 {
	r1 := rnd.Float64()
	r2 := rnd.Float64()
	phi := 2 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)
	return NewVec3(math.Cos(phi)*sqrtR2, math.Sin(phi)*sqrtR2, math.Sqrt(1-r2))
}

// RandomToSphere samples a direction within the cone subtended by a
// sphere of the given radius at the given squared distance. Directions
// are in the z-up local frame of the cone axis.
func RandomToSphere(radius, distanceSquared float64, rnd *rand.Rand) Vec3 {
	r1 := rnd.Float64()
	r2 := rnd.Float64()

	cosThetaMax := math.Sqrt(math.Max(0, 1-radius*radius/distanceSquared))
	z := 1 + r2*(cosThetaMax-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))
	return NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, z)
}

// RandomInUnitDisk returns a point in the unit disk using the
// concentric map, which preserves stratification better than rejection.
func RandomInUnitDisk(rnd *rand.Rand) Vec3 {
	u := 2*rnd.Float64() - 1
	v := 2*rnd.Float64() - 1
	if u == 0 && v == 0 {
		return Zero
	}

	var r, theta float64
	if math.Abs(u) > math.Abs(v) {
		r = u
		theta = math.Pi / 4 * (v / u)
	} else {
		r = v
		theta = math.Pi/2 - math.Pi/4*(u/v)
	}
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
