package renderer

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"empty defaults to uniform", "", "UniformFilter", false},
		{"uniform", "UniformFilter", "UniformFilter", false},
		{"tent", "TentFilter", "TentFilter", false},
		{"lanczos", "LanczosFilter", "LanczosFilter", false},
		{"unknown", "BoxFilter", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v, wantErr=%v", err, tt.wantErr)
			}
			if err == nil && f.String() != tt.want {
				t.Errorf("got %s, expected %s", f.String(), tt.want)
			}
		})
	}
}

func TestFilters_SamplesStayInPixel(t *testing.T) {
	filters := []Filter{UniformFilter{}, TentFilter{}, LanczosFilter{}}
	for _, f := range filters {
		t.Run(f.String(), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(5))
			for i := 0; i < 10000; i++ {
				x := f.Sample(rnd)
				if x < 0 || x >= 1 {
					t.Fatalf("sample %v outside [0,1)", x)
				}
			}
		})
	}
}

func TestTentFilter_ConcentratesAtCenter(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	f := TentFilter{}

	center := 0
	const n = 20000
	for i := 0; i < n; i++ {
		x := f.Sample(rnd)
		if x > 0.25 && x < 0.75 {
			center++
		}
	}
	// The tent puts 3/4 of its mass in the central half.
	if ratio := float64(center) / n; math.Abs(ratio-0.75) > 0.02 {
		t.Errorf("central mass %v, expected about 0.75", ratio)
	}
}

func TestLanczosKernel(t *testing.T) {
	if got := lanczos(0); got != 1 {
		t.Errorf("lanczos(0)=%v, expected 1", got)
	}
	if got := lanczos(2); got != 0 {
		t.Errorf("lanczos(2)=%v, expected 0", got)
	}
	if got := lanczos(1); math.Abs(got) > 1e-9 {
		t.Errorf("lanczos(1)=%v, expected a zero crossing", got)
	}
	for _, x := range []float64{-1.9, -0.5, 0.1, 0.5, 1.5} {
		if w := lanczos(x); w > 1 || w < -0.1 {
			t.Errorf("lanczos(%v)=%v outside expected range", x, w)
		}
	}
}
