package loaders

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// LoadGLTF reads triangle geometry from a glTF or GLB file. All
// triangle primitives of all meshes are merged into one vertex pool.
func LoadGLTF(filename string) (*MeshData, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open gltf %s", filename)
	}

	data := &MeshData{}
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			// Mode 0 covers documents that omit the field entirely.
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			if err := appendPrimitive(doc, prim, data); err != nil {
				return nil, errors.Wrapf(err, "mesh %q", mesh.Name)
			}
		}
	}
	return data, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, data *MeshData) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return errors.New("primitive has no POSITION attribute")
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return errors.Wrap(err, "read positions")
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return errors.Wrap(err, "read normals")
		}
	}

	// Normals stay parallel to vertices across primitives, so a
	// primitive without normals pads with zero vectors when an earlier
	// one had them.
	base := len(data.Vertices)
	for i, p := range positions {
		data.Vertices = append(data.Vertices, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
		if normals != nil {
			if len(data.Normals) < base {
				data.Normals = append(data.Normals, make([]core.Vec3, base-len(data.Normals))...)
			}
			n := normals[i]
			data.Normals = append(data.Normals, core.NewVec3(float64(n[0]), float64(n[1]), float64(n[2])))
		}
	}

	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return errors.Wrap(err, "read indices")
		}
		for _, idx := range indices {
			data.Indices = append(data.Indices, base+int(idx))
		}
	} else {
		for i := 0; i+2 < len(positions); i += 3 {
			data.Indices = append(data.Indices, base+i, base+i+1, base+i+2)
		}
	}
	return nil
}
