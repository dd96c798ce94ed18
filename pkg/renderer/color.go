package renderer

import (
	"image/color"
	"math"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// ToRGBA converts accumulated linear radiance to an 8-bit output pixel:
// average over samples, gamma 2.0, clamp, quantize. Non-finite
// components are written as black.
func ToRGBA(sum core.Vec3, samplesPerPixel int) color.RGBA {
	scale := 1 / float64(samplesPerPixel)
	return color.RGBA{
		R: toByte(sum.X * scale),
		G: toByte(sum.Y * scale),
		B: toByte(sum.Z * scale),
		A: 255,
	}
}

func toByte(c float64) uint8 {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0
	}
	c = math.Sqrt(c)
	if c < 0 {
		c = 0
	} else if c > 0.999 {
		c = 0.999
	}
	return uint8(c * 256)
}
