package material

import (
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// Metal is a specular reflector with optional fuzz. Fuzz perturbs the
// reflected direction within a sphere of that radius.
type Metal struct {
	Albedo core.Texture
	Fuzz   float64
}

// NewMetal creates a reflective material; fuzz is clamped to [0,1]
func NewMetal(albedo core.Texture, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	} else if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// reflect mirrors v about the normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Scatter reflects the ray, absorbing it when fuzz pushes it below the surface
func (m *Metal) Scatter(rayIn core.Ray, rec core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), rec.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rnd).Multiply(m.Fuzz))
	}
	if reflected.Dot(rec.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}
	return core.ScatterRecord{
		SpecularRay: core.NewRay(rec.P, reflected),
		IsSpecular:  true,
		Attenuation: m.Albedo.Value(rec.U, rec.V, rec.P),
	}, true
}

// ScatteringPDF is zero; metal only scatters specularly
func (m *Metal) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns no radiance
func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Zero
}

// IsLight reports false
func (m *Metal) IsLight() bool {
	return false
}
