package material

import (
	"math"
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// Lambertian is an ideal diffuse material with cosine-weighted scattering.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a diffuse material over a texture
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns a cosine density around the surface normal
func (l *Lambertian) Scatter(rayIn core.Ray, rec core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.P),
		PDF:         core.NewCosinePDF(rec.Normal),
	}, true
}

// ScatteringPDF is the cosine density of the scattered direction
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emitted returns no radiance
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Zero
}

// IsLight reports false
func (l *Lambertian) IsLight() bool {
	return false
}
