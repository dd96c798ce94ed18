package core

import "testing"

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name string
		ray  Ray
		want bool
	}{
		{"through center", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"misses to the side", NewRay(NewVec3(5, 0, 5), NewVec3(0, 0, -1)), false},
		{"from inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"diagonal", NewRay(NewVec3(3, 3, 3), NewVec3(-1, -1, -1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, 1e9); got != tt.want {
				t.Errorf("got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 0), NewVec3(0.5, 2, 3))
	u := a.Union(b)
	if u.Min != NewVec3(-1, 0, 0) || u.Max != NewVec3(1, 2, 3) {
		t.Errorf("got %v, expected min (-1,0,0) max (1,2,3)", u)
	}

	// EmptyAABB is the identity for Union
	if got := EmptyAABB().Union(a); got != a {
		t.Errorf("union with empty box: got %v, expected %v", got, a)
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name string
		box  AABB
		want int
	}{
		{"x longest", NewAABB(Zero, NewVec3(5, 1, 1)), 0},
		{"y longest", NewAABB(Zero, NewVec3(1, 5, 1)), 1},
		{"z longest", NewAABB(Zero, NewVec3(1, 1, 5)), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.LongestAxis(); got != tt.want {
				t.Errorf("got %d, expected %d", got, tt.want)
			}
		})
	}
}
