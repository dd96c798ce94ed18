package material

import (
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// DiffuseLight emits its texture scaled by intensity and never scatters.
type DiffuseLight struct {
	Emit      core.Texture
	Intensity float64
}

// NewDiffuseLight creates an emissive material
func NewDiffuseLight(emit core.Texture, intensity float64) *DiffuseLight {
	return &DiffuseLight{Emit: emit, Intensity: intensity}
}

// Scatter absorbs the ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, rec core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is zero; the light never scatters
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the texture color scaled by intensity
func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emit.Value(u, v, p).Multiply(d.Intensity)
}

// IsLight reports true
func (d *DiffuseLight) IsLight() bool {
	return true
}
