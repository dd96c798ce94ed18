package core

import (
	"math"
	"math/rand"
)

// CosinePDF is the cosine-weighted hemisphere density around a normal.
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine density oriented along n
func NewCosinePDF(n Vec3) CosinePDF {
	return CosinePDF{uvw: NewONB(n)}
}

// Value returns cos(theta)/pi, zero below the horizon
func (p CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate samples a direction with cosine-weighted density
func (p CosinePDF) Generate(rnd *rand.Rand) Vec3 {
	return p.uvw.Local(RandomCosineDirection(rnd))
}

// HittablePDF samples directions toward a hittable from a fixed origin.
type HittablePDF struct {
	Objects Hittable
	Origin  Vec3
}

// NewHittablePDF creates a density over directions toward objects
func NewHittablePDF(objects Hittable, origin Vec3) HittablePDF {
	return HittablePDF{Objects: objects, Origin: origin}
}

// Value returns the solid-angle density of the direction
func (p HittablePDF) Value(direction Vec3) float64 {
	return p.Objects.PDFValue(p.Origin, direction)
}

// Generate samples a direction toward the objects
func (p HittablePDF) Generate(rnd *rand.Rand) Vec3 {
	return p.Objects.Random(p.Origin, rnd).Normalize()
}

// MixturePDF averages two densities with equal weight.
type MixturePDF struct {
	P0, P1 PDF
}

// NewMixturePDF creates a 50/50 mixture of two densities
func NewMixturePDF(p0, p1 PDF) MixturePDF {
	return MixturePDF{P0: p0, P1: p1}
}

// Value returns the mixture density of the direction
func (p MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.P0.Value(direction) + 0.5*p.P1.Value(direction)
}

// Generate samples from either component with equal probability
func (p MixturePDF) Generate(rnd *rand.Rand) Vec3 {
	if rnd.Float64() < 0.5 {
		return p.P0.Generate(rnd)
	}
	return p.P1.Generate(rnd)
}
