package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	v := NewVec3(1, 2, 3)
	u := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", v.Add(u), NewVec3(5, 7, 9)},
		{"Subtract", u.Subtract(v), NewVec3(3, 3, 3)},
		{"Multiply", v.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", v.MultiplyVec(u), NewVec3(4, 10, 18)},
		{"Negate", v.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 0)
	if got := v.Dot(v); got != 25 {
		t.Errorf("Dot: got %v, expected 25", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Length: got %v, expected 5", got)
	}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize: length %v, expected 1", n.Length())
	}
	if Zero.Normalize() != Zero {
		t.Errorf("Normalize of zero vector should be zero")
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}

func TestVec3_Rotate(t *testing.T) {
	// Quarter turn about Z maps +X to +Y
	got := NewVec3(1, 0, 0).Rotate(NewVec3(0, 0, math.Pi/2))
	expected := NewVec3(0, 1, 0)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("got %v, expected %v", got, expected)
	}

	// Rotation preserves length
	v := NewVec3(1, 2, 3)
	r := v.Rotate(NewVec3(0.3, 1.1, -0.7))
	if math.Abs(r.Length()-v.Length()) > 1e-12 {
		t.Errorf("rotation changed length: %v vs %v", r.Length(), v.Length())
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))
	if got := r.At(0); got != r.Origin {
		t.Errorf("At(0): got %v, expected origin %v", got, r.Origin)
	}
	if got := r.At(2); got != NewVec3(1, 2, 1) {
		t.Errorf("At(2): got %v, expected (1,2,1)", got)
	}
}
