package geometry

import (
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// stubMaterial is a minimal material for intersection tests.
type stubMaterial struct {
	light bool
}

func (m *stubMaterial) Scatter(rayIn core.Ray, rec core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (m *stubMaterial) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 0
}

func (m *stubMaterial) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Zero
}

func (m *stubMaterial) IsLight() bool {
	return m.light
}
