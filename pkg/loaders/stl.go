package loaders

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// MeshData is raw triangle geometry as produced by the mesh loaders.
// Indices reference Vertices in groups of three. Normals, when present,
// run parallel to Vertices.
type MeshData struct {
	Vertices []core.Vec3
	Normals  []core.Vec3
	Indices  []int
}

// stlTriangle mirrors the 50-byte binary STL record.
type stlTriangle struct {
	Normal   [3]float32
	Vertices [3][3]float32
	Attr     uint16
}

// LoadSTL reads a binary STL file. The format is a triangle soup, so
// every triangle contributes three fresh vertices.
func LoadSTL(filename string) (*MeshData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open stl %s", filename)
	}
	defer f.Close()

	data, err := DecodeSTL(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "decode stl %s", filename)
	}
	return data, nil
}

// DecodeSTL parses binary STL from a reader: an 80-byte header, a
// little-endian uint32 triangle count, then 50-byte triangle records.
func DecodeSTL(r io.Reader) (*MeshData, error) {
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "read triangle count")
	}

	data := &MeshData{
		Vertices: make([]core.Vec3, 0, count*3),
		Indices:  make([]int, 0, count*3),
	}

	var tri stlTriangle
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &tri); err != nil {
			return nil, errors.Wrapf(err, "read triangle %d", i)
		}
		base := len(data.Vertices)
		for v := 0; v < 3; v++ {
			data.Vertices = append(data.Vertices, core.NewVec3(
				float64(tri.Vertices[v][0]),
				float64(tri.Vertices[v][1]),
				float64(tri.Vertices[v][2]),
			))
		}
		data.Indices = append(data.Indices, base, base+1, base+2)
	}
	return data, nil
}
