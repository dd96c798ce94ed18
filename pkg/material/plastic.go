package material

import (
	"math"
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// Plastic mixes a fuzzy mirror lobe and a diffuse lobe. Reflectivity is
// the probability of the mirror interaction.
type Plastic struct {
	Albedo       core.Texture
	Reflectivity float64
	Fuzz         float64
}

// NewPlastic creates a glossy plastic material
func NewPlastic(albedo core.Texture, reflectivity, fuzz float64) *Plastic {
	return &Plastic{Albedo: albedo, Reflectivity: reflectivity, Fuzz: fuzz}
}

// Scatter picks the mirror lobe with probability reflectivity, the
// diffuse lobe otherwise.
func (pl *Plastic) Scatter(rayIn core.Ray, rec core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	attenuation := pl.Albedo.Value(rec.U, rec.V, rec.P)

	if rnd.Float64() < pl.Reflectivity {
		reflected := reflect(rayIn.Direction.Normalize(), rec.Normal)
		if pl.Fuzz > 0 {
			reflected = reflected.Add(core.RandomInUnitSphere(rnd).Multiply(pl.Fuzz))
		}
		if reflected.Dot(rec.Normal) <= 0 {
			return core.ScatterRecord{}, false
		}
		return core.ScatterRecord{
			SpecularRay: core.NewRay(rec.P, reflected),
			IsSpecular:  true,
			Attenuation: attenuation,
		}, true
	}

	return core.ScatterRecord{
		Attenuation: attenuation,
		PDF:         core.NewCosinePDF(rec.Normal),
	}, true
}

// ScatteringPDF is the cosine density of the diffuse lobe
func (pl *Plastic) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emitted returns no radiance
func (pl *Plastic) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Zero
}

// IsLight reports false
func (pl *Plastic) IsLight() bool {
	return false
}
