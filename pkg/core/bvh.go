package core

import (
	"math/rand"
	"sort"
)

// maxLeafSize is the largest number of primitives stored in one leaf.
const maxLeafSize = 2

// bvhNode is one node in the flattened tree. Interior nodes reference
// children by index; leaves reference a range of the primitive slice.
type bvhNode struct {
	bounds      AABB
	left, right int32 // child node indices, -1 for leaves
	start, end  int32 // primitive range, leaves only
}

// BVH is a bounding volume hierarchy over a set of hittables. The tree
// is stored as a flat node array and is immutable after construction,
// so traversal is safe from any number of goroutines.
type BVH struct {
	nodes   []bvhNode
	objects []Hittable
}

// NewBVH builds a hierarchy over the given objects by recursively
// splitting at the median of the longest axis. The input slice is
// copied so the caller may reuse it.
func NewBVH(objects []Hittable) *BVH {
	b := &BVH{objects: make([]Hittable, len(objects))}
	copy(b.objects, objects)
	if len(b.objects) > 0 {
		b.build(0, int32(len(b.objects)))
	}
	return b
}

// build creates the subtree for objects[start:end] and returns its
// node index.
func (b *BVH) build(start, end int32) int32 {
	bounds := EmptyAABB()
	for i := start; i < end; i++ {
		bounds = bounds.Union(b.objects[i].BoundingBox())
	}

	idx := int32(len(b.nodes))
	b.nodes = append(b.nodes, bvhNode{bounds: bounds, left: -1, right: -1})

	if end-start <= maxLeafSize {
		b.nodes[idx].start = start
		b.nodes[idx].end = end
		return idx
	}

	axis := bounds.LongestAxis()
	objs := b.objects[start:end]
	sort.Slice(objs, func(i, j int) bool {
		return objs[i].BoundingBox().Center().Axis(axis) < objs[j].BoundingBox().Center().Axis(axis)
	})

	mid := start + (end-start)/2
	left := b.build(start, mid)
	right := b.build(mid, end)
	b.nodes[idx].left = left
	b.nodes[idx].right = right
	return idx
}

// Hit finds the closest intersection in (tMin, tMax), walking the tree
// iteratively with an explicit stack.
func (b *BVH) Hit(r Ray, tMin, tMax float64) (*HitRecord, bool) {
	if len(b.nodes) == 0 {
		return nil, false
	}

	var stack [64]int32
	top := 0
	stack[top] = 0

	var closest *HitRecord
	closestT := tMax

	for top >= 0 {
		node := &b.nodes[stack[top]]
		top--

		if !node.bounds.Hit(r, tMin, closestT) {
			continue
		}

		if node.left < 0 {
			for i := node.start; i < node.end; i++ {
				if rec, ok := b.objects[i].Hit(r, tMin, closestT); ok {
					closest = rec
					closestT = rec.T
				}
			}
			continue
		}

		top++
		stack[top] = node.left
		top++
		stack[top] = node.right
	}

	return closest, closest != nil
}

// BoundingBox returns the bounds of the whole hierarchy
func (b *BVH) BoundingBox() AABB {
	if len(b.nodes) == 0 {
		return EmptyAABB()
	}
	return b.nodes[0].bounds
}

// IsLight reports false; light sampling goes through the owning aggregate
func (b *BVH) IsLight() bool {
	return false
}

// PDFValue returns zero; the hierarchy is not sampled directly
func (b *BVH) PDFValue(origin, direction Vec3) float64 {
	return 0
}

// Random returns an arbitrary direction; the hierarchy is not sampled directly
func (b *BVH) Random(origin Vec3, rnd *rand.Rand) Vec3 {
	return NewVec3(0, 1, 0)
}
