package geometry

import (
	"math"
	"math/rand"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// Triangle is a single triangle with per-vertex shading normals.
type Triangle struct {
	V0, V1, V2 core.Vec3
	N0, N1, N2 core.Vec3
	Mat        core.Material

	faceNormal core.Vec3
	area       float64
	bbox       core.AABB
}

// NewTriangle creates a flat-shaded triangle using the face normal at
// every vertex.
func NewTriangle(v0, v1, v2 core.Vec3, mat core.Material) *Triangle {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return NewTriangleWithNormals(v0, v1, v2, n, n, n, mat)
}

// NewTriangleWithNormals creates a triangle with explicit shading
// normals. Zero normals fall back to the face normal; vertex order is
// flipped when all shading normals oppose the winding.
func NewTriangleWithNormals(v0, v1, v2, n0, n1, n2 core.Vec3, mat core.Material) *Triangle {
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	cross := e1.Cross(e2)
	faceNormal := cross.Normalize()

	if n0.NearZero() {
		n0 = faceNormal
	}
	if n1.NearZero() {
		n1 = faceNormal
	}
	if n2.NearZero() {
		n2 = faceNormal
	}

	if n0.Dot(faceNormal) < 0 && n1.Dot(faceNormal) < 0 && n2.Dot(faceNormal) < 0 {
		v1, v2 = v2, v1
		n1, n2 = n2, n1
		faceNormal = faceNormal.Negate()
	}

	bbox := core.EmptyAABB().ExpandPoint(v0).ExpandPoint(v1).ExpandPoint(v2).Pad(0.0001)
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n0, N1: n1, N2: n2,
		Mat:        mat,
		faceNormal: faceNormal,
		area:       0.5 * cross.Length(),
		bbox:       bbox,
	}
}

// IsDegenerate reports whether the triangle has effectively no area.
func (tr *Triangle) IsDegenerate() bool {
	return tr.area < 1e-12
}

// Hit intersects with the Moller-Trumbore algorithm. Barycentric
// coordinates interpolate the shading normals and become the UVs.
func (tr *Triangle) Hit(r core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	e1 := tr.V1.Subtract(tr.V0)
	e2 := tr.V2.Subtract(tr.V0)

	pvec := r.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) < 1e-12 {
		return nil, false
	}
	invDet := 1 / det

	tvec := r.Origin.Subtract(tr.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(e1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := e2.Dot(qvec) * invDet
	if t <= tMin || t >= tMax {
		return nil, false
	}

	w := 1 - u - v
	shading := tr.N0.Multiply(w).Add(tr.N1.Multiply(u)).Add(tr.N2.Multiply(v)).Normalize()
	if shading.NearZero() {
		shading = tr.faceNormal
	}

	rec := &core.HitRecord{T: t, P: r.At(t), Mat: tr.Mat, U: u, V: v}
	rec.SetFaceNormal(r, shading)
	return rec, true
}

// BoundingBox returns the padded box around the vertices
func (tr *Triangle) BoundingBox() core.AABB {
	return tr.bbox
}

// IsLight reports whether the material emits light
func (tr *Triangle) IsLight() bool {
	return tr.Mat.IsLight()
}

// PDFValue converts the area density to a solid-angle density at origin.
func (tr *Triangle) PDFValue(origin, direction core.Vec3) float64 {
	rec, ok := tr.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !ok {
		return 0
	}
	if tr.area < 1e-12 {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * tr.area)
}

// Random returns a direction from origin to a uniform point on the
// triangle, using the square-root warp for uniform area density.
func (tr *Triangle) Random(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	su := math.Sqrt(rnd.Float64())
	v := rnd.Float64()
	a := 1 - su
	b := su * (1 - v)
	c := su * v

	p := tr.V0.Multiply(a).Add(tr.V1.Multiply(b)).Add(tr.V2.Multiply(c))
	return p.Subtract(origin)
}
