package material

import (
	"math"
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// Dielectric is a transparent material that reflects or refracts by
// Fresnel probability. Opacity routes a fraction of rays through a
// diffuse interaction instead, for frosted glass.
type Dielectric struct {
	Albedo        core.Texture
	RefractionIdx float64
	Opacity       float64
}

// NewDielectric creates a clear glass material
func NewDielectric(albedo core.Texture, refractionIdx float64) *Dielectric {
	return NewDielectricWithOpacity(albedo, refractionIdx, 0)
}

// NewDielectricWithOpacity creates glass that scatters diffusely with
// the given probability
func NewDielectricWithOpacity(albedo core.Texture, refractionIdx, opacity float64) *Dielectric {
	return &Dielectric{Albedo: albedo, RefractionIdx: refractionIdx, Opacity: opacity}
}

// refract bends uv through a surface with normal n and index ratio etaRatio
func refract(uv, n core.Vec3, etaRatio float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// reflectance is Schlick's approximation of the Fresnel factor
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Scatter refracts or reflects the ray; opaque interactions fall back
// to a cosine density.
func (d *Dielectric) Scatter(rayIn core.Ray, rec core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	attenuation := d.Albedo.Value(rec.U, rec.V, rec.P)

	if d.Opacity > 0 && rnd.Float64() < d.Opacity {
		return core.ScatterRecord{
			Attenuation: attenuation,
			PDF:         core.NewCosinePDF(rec.Normal),
		}, true
	}

	refractionRatio := d.RefractionIdx
	if rec.FrontFace {
		refractionRatio = 1 / d.RefractionIdx
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDir.Negate().Dot(rec.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1
	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, refractionRatio) > rnd.Float64() {
		direction = reflect(unitDir, rec.Normal)
	} else {
		direction = refract(unitDir, rec.Normal, refractionRatio)
	}

	return core.ScatterRecord{
		SpecularRay: core.NewRay(rec.P, direction),
		IsSpecular:  true,
		Attenuation: attenuation,
	}, true
}

// ScatteringPDF is the cosine density of the opaque branch
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emitted returns no radiance
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Zero
}

// IsLight reports false
func (d *Dielectric) IsLight() bool {
	return false
}
