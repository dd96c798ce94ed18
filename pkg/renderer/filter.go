package renderer

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Filter draws sub-pixel offsets in [0,1) used to jitter primary rays.
type Filter interface {
	Sample(rnd *rand.Rand) float64
	String() string
}

// NewFilter returns the filter with the given name. An empty name
// selects the uniform filter.
func NewFilter(name string) (Filter, error) {
	switch name {
	case "", "UniformFilter":
		return UniformFilter{}, nil
	case "TentFilter":
		return TentFilter{}, nil
	case "LanczosFilter":
		return LanczosFilter{}, nil
	default:
		return nil, errors.Errorf("unknown filter %q", name)
	}
}

// UniformFilter samples offsets uniformly across the pixel.
type UniformFilter struct{}

// Sample returns a uniform offset
func (UniformFilter) Sample(rnd *rand.Rand) float64 {
	return rnd.Float64()
}

func (UniformFilter) String() string { return "UniformFilter" }

// TentFilter concentrates samples toward the pixel center with a
// triangular density.
type TentFilter struct{}

// Sample warps a uniform variate through the tent inverse CDF
func (TentFilter) Sample(rnd *rand.Rand) float64 {
	x := rnd.Float64()
	if x < 0.5 {
		return math.Sqrt(2*x) * 0.5
	}
	return 1 - math.Sqrt(2*(1-x))*0.5
}

func (TentFilter) String() string { return "TentFilter" }

// LanczosFilter approximates a Lanczos-2 reconstruction kernel by
// rejection sampling its positive lobe over the pixel.
type LanczosFilter struct{}

// lanczos is the windowed sinc with support 2
func lanczos(x float64) float64 {
	if x == 0 {
		return 1
	}
	if math.Abs(x) >= 2 {
		return 0
	}
	px := math.Pi * x
	return 2 * math.Sin(px) * math.Sin(px/2) / (px * px)
}

// Sample draws an offset with density proportional to the kernel
// centered on the pixel.
func (LanczosFilter) Sample(rnd *rand.Rand) float64 {
	for {
		x := rnd.Float64()
		if rnd.Float64() <= lanczos(x-0.5) {
			return x
		}
	}
}

func (LanczosFilter) String() string { return "LanczosFilter" }
