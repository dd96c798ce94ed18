package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

func TestCamera_CenterRay(t *testing.T) {
	cam := NewCamera(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, 1, 0, 1,
	)
	rnd := rand.New(rand.NewSource(1))

	ray := cam.GetRay(0.5, 0.5, rnd)
	if ray.Origin != core.Zero {
		t.Errorf("origin %v, expected camera position", ray.Origin)
	}
	dir := ray.Direction.Normalize()
	if dir.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("center ray direction %v, expected -z", dir)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	// At 90 degrees vfov the top edge ray leaves at 45 degrees.
	cam := NewCamera(
		core.Zero, core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, 1, 0, 1,
	)
	rnd := rand.New(rand.NewSource(2))

	top := cam.GetRay(0.5, 1, rnd).Direction.Normalize()
	angle := math.Acos(top.Dot(core.NewVec3(0, 0, -1)))
	if math.Abs(angle-math.Pi/4) > 1e-9 {
		t.Errorf("top edge angle %v rad, expected pi/4", angle)
	}
}

func TestCamera_PinholeIsDeterministic(t *testing.T) {
	cam := NewCamera(
		core.NewVec3(3, 2, 1), core.Zero, core.NewVec3(0, 1, 0),
		40, 16.0/9.0, 0, 10,
	)
	a := cam.GetRay(0.3, 0.7, rand.New(rand.NewSource(1)))
	b := cam.GetRay(0.3, 0.7, rand.New(rand.NewSource(99)))
	if a != b {
		t.Error("pinhole rays should not depend on the generator")
	}
}

func TestCamera_ApertureFocusesAtFocusDistance(t *testing.T) {
	// Lens-jittered rays through the same viewport point all cross the
	// focus plane at the same spot.
	focusDist := 10.0
	cam := NewCamera(
		core.Zero, core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		60, 1, 0.5, focusDist,
	)
	rnd := rand.New(rand.NewSource(3))

	crossing := func(r core.Ray) core.Vec3 {
		tPlane := (-focusDist - r.Origin.Z) / r.Direction.Z
		return r.At(tPlane)
	}

	target := crossing(cam.GetRay(0.3, 0.6, rnd))
	for i := 0; i < 50; i++ {
		p := crossing(cam.GetRay(0.3, 0.6, rnd))
		if p.Subtract(target).Length() > 1e-9 {
			t.Fatalf("lens sample %d crosses the focus plane at %v, expected %v", i, p, target)
		}
	}
}

func TestCamera_ApertureJittersOrigin(t *testing.T) {
	cam := NewCamera(
		core.Zero, core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		60, 1, 0.5, 10,
	)
	rnd := rand.New(rand.NewSource(4))

	moved := false
	for i := 0; i < 20; i++ {
		if cam.GetRay(0.5, 0.5, rnd).Origin.Length() > 1e-12 {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("open aperture never moved the ray origin")
	}
}
