package scene

import (
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
	"github.com/s0berman/go-pathtracer/pkg/geometry"
	"github.com/s0berman/go-pathtracer/pkg/material"
	"github.com/s0berman/go-pathtracer/pkg/renderer"
)

// defaultConstants are used when no config file is given.
var defaultConstants = ConstantsConfig{
	Width:           800,
	Height:          600,
	SamplesPerPixel: 64,
	MaxDepth:        50,
	MinDepth:        3,
}

// Default builds the built-in demo scene: a gray ground sphere, three
// hero spheres (glass, diffuse, metal), a small overhead light and a
// field of random small spheres. The sphere field uses a fixed seed so
// repeated runs render the same image.
func Default() *Scene {
	rnd := rand.New(rand.NewSource(42))

	gray := material.NewLambertian(material.NewSolidColor(core.NewVec3(0.5, 0.5, 0.5)))
	light := material.NewDiffuseLight(material.NewSolidColor(core.One), 8)
	glass := material.NewDielectric(material.NewSolidColor(core.One), 1.5)
	brown := material.NewLambertian(material.NewSolidColor(core.NewVec3(0.4, 0.2, 0.1)))
	steel := material.NewMetal(material.NewSolidColor(core.NewVec3(0.7, 0.6, 0.5)), 0)

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, gray),
		geometry.NewSphere(core.NewVec3(0, 4, 0), 0.5, light),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, brown),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, steel),
		randomSphereField(rnd),
	}

	camera := renderer.NewCamera(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		40,
		float64(defaultConstants.Width)/float64(defaultConstants.Height),
		0.1,
		10,
	)

	sc, _ := assemble(defaultConstants, objects, camera)
	return sc
}

// randomSphereField scatters small spheres on the ground plane,
// skipping the area occupied by the metal hero sphere.
func randomSphereField(rnd *rand.Rand) core.Hittable {
	var spheres []core.Hittable
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*rnd.Float64(),
				0.2,
				float64(b)+0.9*rnd.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			choose := rnd.Float64()
			var mat core.Material
			switch {
			case choose < 0.7:
				albedo := core.NewVec3(rnd.Float64(), rnd.Float64(), rnd.Float64()).
					MultiplyVec(core.NewVec3(rnd.Float64(), rnd.Float64(), rnd.Float64()))
				mat = material.NewLambertian(material.NewSolidColor(albedo))
			case choose < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*rnd.Float64(),
					0.5+0.5*rnd.Float64(),
					0.5+0.5*rnd.Float64(),
				)
				mat = material.NewMetal(material.NewSolidColor(albedo), 0.5*rnd.Float64())
			default:
				mat = material.NewDielectric(material.NewSolidColor(core.One), 1.5)
			}
			spheres = append(spheres, geometry.NewSphere(center, 0.2, mat))
		}
	}
	return geometry.NewSphereArray(spheres)
}
