package integrator

import (
	"math"
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// Sky gradient colors used when no environment map is set.
var (
	skyHorizon = core.NewVec3(1, 1, 1)
	skyZenith  = core.NewVec3(0.5, 0.7, 1.0)
)

// Config bounds the recursion. MinDepth is the number of bounces that
// always survive before Russian roulette may terminate the path.
type Config struct {
	MaxDepth int
	MinDepth int
}

// PathTracer evaluates radiance along camera rays by recursive
// path tracing with light-sample mixture importance sampling.
type PathTracer struct {
	cfg Config
}

// NewPathTracer creates an integrator with the given depth bounds
func NewPathTracer(cfg Config) *PathTracer {
	return &PathTracer{cfg: cfg}
}

// RayColor returns the radiance arriving along r. World holds the
// scene geometry, lights the sampleable emitters (nil when there are
// none), and envmap the environment sphere (nil for the sky gradient).
func (pt *PathTracer) RayColor(r core.Ray, world, lights, envmap core.Hittable, depth int, rnd *rand.Rand) core.Vec3 {
	if depth >= pt.cfg.MaxDepth {
		return core.Zero
	}

	rec, ok := world.Hit(r, 0.001, math.Inf(1))
	if !ok {
		return pt.miss(r, envmap)
	}

	emitted := rec.Mat.Emitted(rec.U, rec.V, rec.P)
	if rec.Mat.IsLight() {
		return emitted
	}

	srec, ok := rec.Mat.Scatter(r, *rec, rnd)
	if !ok {
		return emitted
	}

	// Russian roulette after the guaranteed bounces. Paths survive
	// with probability p and are compensated by 1/p to stay unbiased.
	rrWeight := 1.0
	if depth > pt.cfg.MinDepth {
		p := srec.Attenuation.MaxComponent()
		if p > 0.95 {
			p = 0.95
		} else if p < 0.05 {
			p = 0.05
		}
		if rnd.Float64() >= p {
			return emitted
		}
		rrWeight = 1 / p
	}

	if srec.IsSpecular {
		incoming := pt.RayColor(srec.SpecularRay, world, lights, envmap, depth+1, rnd)
		return emitted.Add(srec.Attenuation.MultiplyVec(incoming).Multiply(rrWeight))
	}

	// Sample the mixture of the material density and the light set.
	var scattered core.Ray
	var pdf float64
	if lights == nil {
		dir := srec.PDF.Generate(rnd)
		scattered = core.NewRay(rec.P, dir)
		pdf = srec.PDF.Value(dir)
	} else {
		lightPDF := core.NewHittablePDF(lights, rec.P)
		mix := core.NewMixturePDF(srec.PDF, lightPDF)
		dir := mix.Generate(rnd)
		scattered = core.NewRay(rec.P, dir)
		pdf = mix.Value(dir)
	}
	if pdf < 1e-12 {
		return emitted
	}

	scatteringPDF := rec.Mat.ScatteringPDF(r, *rec, scattered)
	incoming := pt.RayColor(scattered, world, lights, envmap, depth+1, rnd)
	contribution := srec.Attenuation.
		MultiplyVec(incoming).
		Multiply(scatteringPDF / pdf * rrWeight)
	return emitted.Add(contribution)
}

// miss shades rays that leave the scene: the environment sphere when
// present and hit, otherwise a vertical sky gradient. A ray can start
// outside the environment sphere and miss it entirely.
func (pt *PathTracer) miss(r core.Ray, envmap core.Hittable) core.Vec3 {
	if envmap != nil {
		if rec, ok := envmap.Hit(r, 0.001, math.Inf(1)); ok {
			return rec.Mat.Emitted(rec.U, rec.V, rec.P)
		}
	}
	t := 0.5 * (r.Direction.Normalize().Y + 1)
	return skyHorizon.Lerp(skyZenith, t)
}
