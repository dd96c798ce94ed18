package core

import "math/rand"

// HitRecord captures the state of a ray-surface intersection.
type HitRecord struct {
	P         Vec3     // intersection point
	Normal    Vec3     // surface normal, always opposing the ray
	Mat       Material // material at the hit point
	T         float64  // ray parameter of the hit
	U, V      float64  // surface parameterization
	FrontFace bool     // whether the ray hit the outward-facing side
}

// SetFaceNormal orients the stored normal against the incoming ray and
// records which side was hit.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect. PDFValue and Random support
// sampling the object as a light source; objects that are never sampled
// return a zero density.
type Hittable interface {
	Hit(r Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
	IsLight() bool
	PDFValue(origin, direction Vec3) float64
	Random(origin Vec3, rnd *rand.Rand) Vec3
}

// ScatterRecord describes how a material redirected an incoming ray.
// Specular interactions carry a fixed ray; diffuse interactions carry a
// density to importance-sample instead.
type ScatterRecord struct {
	SpecularRay Ray
	IsSpecular  bool
	Attenuation Vec3
	PDF         PDF
}

// Material determines how rays scatter off a surface.
type Material interface {
	// Scatter computes the outgoing interaction, returning false when
	// the ray is absorbed.
	Scatter(rayIn Ray, rec HitRecord, rnd *rand.Rand) (ScatterRecord, bool)
	// ScatteringPDF is the density the material assigns to a scattered
	// direction, used to weight mixture-sampled directions.
	ScatteringPDF(rayIn Ray, rec HitRecord, scattered Ray) float64
	// Emitted is the radiance the surface emits at a point.
	Emitted(u, v float64, p Vec3) Vec3
	// IsLight reports whether the material emits light.
	IsLight() bool
}

// Texture maps a surface parameterization and point to a color.
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}

// PDF is a sampleable probability density over directions.
type PDF interface {
	Value(direction Vec3) float64
	Generate(rnd *rand.Rand) Vec3
}
