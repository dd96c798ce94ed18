package loaders

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// encodeSTL writes triangles in the binary STL layout.
func encodeSTL(t *testing.T, triangles [][3]core.Vec3) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(triangles))); err != nil {
		t.Fatal(err)
	}
	for _, tri := range triangles {
		rec := stlTriangle{}
		for v := 0; v < 3; v++ {
			rec.Vertices[v] = [3]float32{float32(tri[v].X), float32(tri[v].Y), float32(tri[v].Z)}
		}
		if err := binary.Write(&buf, binary.LittleEndian, &rec); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func TestDecodeSTL(t *testing.T) {
	triangles := [][3]core.Vec3{
		{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 1), core.NewVec3(0, 1, 1)},
	}

	data, err := DecodeSTL(bytes.NewReader(encodeSTL(t, triangles)))
	if err != nil {
		t.Fatal(err)
	}

	if len(data.Vertices) != 6 {
		t.Fatalf("got %d vertices, expected 6", len(data.Vertices))
	}
	if len(data.Indices) != 6 {
		t.Fatalf("got %d indices, expected 6", len(data.Indices))
	}
	if data.Vertices[4] != core.NewVec3(1, 0, 1) {
		t.Errorf("vertex 4 = %v, expected (1,0,1)", data.Vertices[4])
	}
	for i, idx := range data.Indices {
		if idx != i {
			t.Errorf("index %d = %d, soup indices should be sequential", i, idx)
		}
	}
}

func TestDecodeSTL_Truncated(t *testing.T) {
	full := encodeSTL(t, [][3]core.Vec3{
		{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
	})

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"header only", full[:60]},
		{"missing triangle bytes", full[:len(full)-10]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSTL(bytes.NewReader(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestImageData_At_Clamps(t *testing.T) {
	data := &ImageData{
		Width:  2,
		Height: 2,
		Pixels: []core.Vec3{
			core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
			core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
		},
	}

	if got := data.At(-5, 0); got != core.NewVec3(1, 0, 0) {
		t.Errorf("negative x should clamp to column 0, got %v", got)
	}
	if got := data.At(10, 10); got != core.NewVec3(1, 1, 1) {
		t.Errorf("overflow should clamp to last pixel, got %v", got)
	}
}
