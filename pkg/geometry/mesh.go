package geometry

import (
	"math"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/s0berman/go-pathtracer/pkg/core"
	"github.com/s0berman/go-pathtracer/pkg/loaders"
)

// Mesh is a triangle mesh under its own hierarchy. Vertices are
// recentered and uniformly scaled so the longest bounding box extent
// equals the scaling factor, then rotated and translated into place.
type Mesh struct {
	triangles *HittableList
	bvh       *core.BVH
	bbox      core.AABB
}

// NewMesh loads a mesh file (.stl, .gltf or .glb) and places it in the
// scene. Rotation angles are Euler degrees about X, Y, Z.
func NewMesh(filename string, position, rotation core.Vec3, scalingFactor float64, mat core.Material) (*Mesh, error) {
	var data *loaders.MeshData
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".stl":
		data, err = loaders.LoadSTL(filename)
	case ".gltf", ".glb":
		data, err = loaders.LoadGLTF(filename)
	default:
		return nil, errors.Errorf("unsupported mesh format %q", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return NewMeshFromData(data, position, rotation, scalingFactor, mat)
}

// NewMeshFromData builds a mesh from raw geometry.
func NewMeshFromData(data *loaders.MeshData, position, rotation core.Vec3, scalingFactor float64, mat core.Material) (*Mesh, error) {
	if len(data.Indices)%3 != 0 {
		return nil, errors.Errorf("index count %d is not a multiple of 3", len(data.Indices))
	}
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, errors.New("mesh has no triangles")
	}

	radians := rotation.Multiply(math.Pi / 180)

	// Normalize into a canonical box before placing in the scene.
	bounds := core.EmptyAABB()
	for _, v := range data.Vertices {
		bounds = bounds.ExpandPoint(v)
	}
	center := bounds.Center()
	extent := bounds.Size().MaxComponent()
	scale := 1.0
	if extent > 0 {
		scale = scalingFactor / extent
	}

	vertices := make([]core.Vec3, len(data.Vertices))
	for i, v := range data.Vertices {
		vertices[i] = v.Subtract(center).Multiply(scale).Rotate(radians).Add(position)
	}

	normals := make([]core.Vec3, len(data.Normals))
	for i, n := range data.Normals {
		normals[i] = n.Rotate(radians)
	}
	if len(normals) == 0 {
		normals = averageVertexNormals(vertices, data.Indices)
	}

	list := NewHittableList()
	for i := 0; i+2 < len(data.Indices); i += 3 {
		i0, i1, i2 := data.Indices[i], data.Indices[i+1], data.Indices[i+2]
		if i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) {
			return nil, errors.Errorf("index out of range at triangle %d", i/3)
		}
		tri := NewTriangleWithNormals(
			vertices[i0], vertices[i1], vertices[i2],
			normalAt(normals, i0), normalAt(normals, i1), normalAt(normals, i2),
			mat,
		)
		if tri.IsDegenerate() {
			continue
		}
		list.Add(tri)
	}
	if list.Len() == 0 {
		return nil, errors.New("mesh has no non-degenerate triangles")
	}

	return &Mesh{
		triangles: list,
		bvh:       core.NewBVH(list.Objects),
		bbox:      list.BoundingBox(),
	}, nil
}

func normalAt(normals []core.Vec3, i int) core.Vec3 {
	if i < len(normals) {
		return normals[i]
	}
	return core.Zero
}

// averageVertexNormals accumulates area-weighted face normals on each
// vertex for smooth shading when the file carries no normals.
func averageVertexNormals(vertices []core.Vec3, indices []int) []core.Vec3 {
	normals := make([]core.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) {
			continue
		}
		face := vertices[i1].Subtract(vertices[i0]).Cross(vertices[i2].Subtract(vertices[i0]))
		normals[i0] = normals[i0].Add(face)
		normals[i1] = normals[i1].Add(face)
		normals[i2] = normals[i2].Add(face)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}

// TriangleCount returns the number of triangles after filtering
func (m *Mesh) TriangleCount() int {
	return m.triangles.Len()
}

// Hit delegates to the triangle hierarchy
func (m *Mesh) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return m.bvh.Hit(r, tMin, tMax)
}

// BoundingBox returns the mesh bounds
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// IsLight reports false; meshes are not sampled as lights
func (m *Mesh) IsLight() bool {
	return false
}

// PDFValue returns zero; meshes are not sampled as lights
func (m *Mesh) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

// Random returns an arbitrary direction; meshes are not sampled as lights
func (m *Mesh) Random(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}
