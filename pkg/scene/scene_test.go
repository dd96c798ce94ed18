package scene

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

func baseConfig() *Config {
	return &Config{
		Constants: ConstantsConfig{
			Width: 100, Height: 100, SamplesPerPixel: 4, MaxDepth: 10, MinDepth: 2,
		},
		Camera: &CameraConfig{
			LookFrom: []float64{0, 1, 5}, LookAt: []float64{0, 0, 0}, Vup: []float64{0, 1, 0},
			Vfov: 60, AspectRatio: 1, Aperture: 0, FocusDistance: 5,
		},
	}
}

func solidMaterial(matType string) *MaterialConfig {
	return &MaterialConfig{
		MatType: matType,
		TexType: "SolidColor",
		Texture: &TextureParams{Albedo: []float64{0.5, 0.5, 0.5}},
	}
}

func TestFromConfig_BuildsWorldAndLights(t *testing.T) {
	cfg := baseConfig()
	cfg.World = []ObjectConfig{
		{ObjType: "Sphere", Center: []float64{0, 0, 0}, Radius: 1, Material: solidMaterial("Lambertian")},
		{
			ObjType: "XZRectangle", Position: []float64{0, 5, 0}, Width: 2, Height: 2,
			Material: &MaterialConfig{
				MatType: "DiffuseLight", Intensity: 10,
				TexType: "SolidColor", Texture: &TextureParams{Albedo: []float64{1, 1, 1}},
			},
		},
		{ObjType: "Box", Position: []float64{3, 0, 0}, Width: 1, Height: 1, Depth: 1, Material: solidMaterial("Metal")},
	}

	sc, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if sc.Lights() == nil {
		t.Fatal("expected the emitter in the light set")
	}
	if sc.Environment() != nil {
		t.Error("no environment map configured")
	}

	// The sphere at the origin is in the world hierarchy
	rec, ok := sc.World().Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected to hit the sphere")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("t=%v, expected 4", rec.T)
	}
}

func TestFromConfig_SphereArray(t *testing.T) {
	cfg := baseConfig()
	cfg.World = []ObjectConfig{
		{
			ObjType: "SphereArray",
			Objects: []ObjectConfig{
				{ObjType: "Sphere", Center: []float64{0, 0, 0}, Radius: 0.5, Material: solidMaterial("Lambertian")},
				{ObjType: "Sphere", Center: []float64{2, 0, 0}, Radius: 0.5, Material: solidMaterial("Plastic")},
			},
		},
	}

	sc, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sc.World().Hit(core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); !ok {
		t.Error("expected to hit an array member")
	}
}

func TestFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		object ObjectConfig
	}{
		{"unknown object", ObjectConfig{ObjType: "Torus", Material: solidMaterial("Lambertian")}},
		{"unknown material", ObjectConfig{
			ObjType: "Sphere", Center: []float64{0, 0, 0}, Radius: 1,
			Material: &MaterialConfig{MatType: "Velvet", TexType: "SolidColor", Texture: &TextureParams{Albedo: []float64{1, 1, 1}}},
		}},
		{"unknown texture", ObjectConfig{
			ObjType: "Sphere", Center: []float64{0, 0, 0}, Radius: 1,
			Material: &MaterialConfig{MatType: "Lambertian", TexType: "Marble", Texture: &TextureParams{}},
		}},
		{"missing material", ObjectConfig{ObjType: "Sphere", Center: []float64{0, 0, 0}, Radius: 1}},
		{"short center", ObjectConfig{ObjType: "Sphere", Center: []float64{0}, Radius: 1, Material: solidMaterial("Lambertian")}},
		{"array of boxes", ObjectConfig{
			ObjType: "SphereArray",
			Objects: []ObjectConfig{{ObjType: "Box", Position: []float64{0, 0, 0}, Width: 1, Height: 1, Depth: 1, Material: solidMaterial("Lambertian")}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.World = []ObjectConfig{tt.object}
			if _, err := FromConfig(cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// writeTestPNG writes a tiny image to use as an environment map.
func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "env.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFromConfig_EnvironmentSphere(t *testing.T) {
	cfg := baseConfig()
	cfg.Constants.EnvironmentMap = writeTestPNG(t)
	cfg.Constants.EnvironmentDistance = 500
	cfg.Constants.EnvironmentIntensity = 2

	sc, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	env := sc.Environment()
	if env == nil {
		t.Fatal("expected an environment sphere")
	}
	// Environment stays out of the world hierarchy
	if _, ok := sc.World().Hit(core.NewRay(core.Zero, core.NewVec3(0, 1, 0)), 0.001, math.Inf(1)); ok {
		t.Error("environment sphere leaked into the world")
	}
	if _, ok := env.Hit(core.NewRay(core.Zero, core.NewVec3(0, 1, 0)), 0.001, math.Inf(1)); !ok {
		t.Error("expected the environment sphere to catch escaping rays")
	}
	// With nonzero intensity it joins the light set
	if sc.Lights() == nil {
		t.Error("environment with intensity should be sampleable as a light")
	}
}

func TestFromConfig_EnvironmentZeroIntensityNotALight(t *testing.T) {
	cfg := baseConfig()
	cfg.Constants.EnvironmentMap = writeTestPNG(t)
	cfg.Constants.EnvironmentIntensity = 0

	sc, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Environment() == nil {
		t.Fatal("expected an environment sphere")
	}
	if sc.Lights() != nil {
		t.Error("zero-intensity environment should not be sampled as a light")
	}
}

func TestDefault(t *testing.T) {
	sc := Default()

	if sc.Consts.Width <= 0 || sc.Consts.SamplesPerPixel <= 0 {
		t.Errorf("bad default constants: %+v", sc.Consts)
	}
	if sc.Lights() == nil {
		t.Error("default scene should have the overhead light")
	}
	if sc.Camera() == nil {
		t.Fatal("default scene has no camera")
	}

	// Glass hero sphere at the origin
	if _, ok := sc.World().Hit(core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); !ok {
		t.Error("expected to hit the glass sphere")
	}
}

func TestDefault_Deterministic(t *testing.T) {
	a := Default()
	b := Default()

	ray := core.NewRay(core.NewVec3(5, 0.2, 5), core.NewVec3(-1, 0, -1).Normalize())
	recA, okA := a.World().Hit(ray, 0.001, math.Inf(1))
	recB, okB := b.World().Hit(ray, 0.001, math.Inf(1))
	if okA != okB {
		t.Fatal("default scenes differ between runs")
	}
	if okA && recA.T != recB.T {
		t.Errorf("default scenes differ: t=%v vs %v", recA.T, recB.T)
	}
}
