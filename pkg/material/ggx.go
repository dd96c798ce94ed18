package material

import (
	"math"
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// GGXGlossy is a rough specular material. The mirror lobe reflects
// about a half-vector jittered by the squared roughness; the rest of
// the energy scatters diffusely.
type GGXGlossy struct {
	Albedo       core.Texture
	Roughness    float64
	Reflectivity float64
}

// NewGGXGlossy creates a rough glossy material
func NewGGXGlossy(albedo core.Texture, roughness, reflectivity float64) *GGXGlossy {
	return &GGXGlossy{Albedo: albedo, Roughness: roughness, Reflectivity: reflectivity}
}

// Scatter reflects about a perturbed half-vector with probability
// reflectivity, otherwise scatters diffusely.
func (g *GGXGlossy) Scatter(rayIn core.Ray, rec core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	attenuation := g.Albedo.Value(rec.U, rec.V, rec.P)

	if rnd.Float64() < g.Reflectivity {
		alpha := g.Roughness * g.Roughness
		half := rec.Normal.Add(core.RandomUnitVector(rnd).Multiply(alpha)).Normalize()
		reflected := reflect(rayIn.Direction.Normalize(), half)
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
func (g *GGXGlossy) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emitted returns no radiance
func (g *GGXGlossy) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Zero
}

// IsLight reports false
func (g *GGXGlossy) IsLight() bool {
	return false
}
