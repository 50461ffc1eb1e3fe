package geometry

import (
	"sort"

	"github.com/cg711/raytracer/pkg/core"
)

// BVHNode is a node in a Bounding Volume Hierarchy. Internal nodes hold two
// children; leaves hold a single shape. The tree is immutable once built.
type BVHNode struct {
	left  core.Shape
	right core.Shape
	bbox  core.AABB
}

// NewBVH builds a BVH over the given shapes and returns the root. The input
// slice is copied so callers keep their ordering.
func NewBVH(shapes []core.Shape) *BVHNode {
	if len(shapes) == 0 {
		return &BVHNode{bbox: core.NewAABBFromPoints()}
	}

	shapesCopy := make([]core.Shape, len(shapes))
	copy(shapesCopy, shapes)

	return buildBVH(shapesCopy)
}

// buildBVH recursively partitions shapes by bounding-box center along the
// longest axis of the span, splitting at the midpoint
func buildBVH(shapes []core.Shape) *BVHNode {
	bbox := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		bbox = bbox.Union(shape.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}

	switch len(shapes) {
	case 1:
		node.left = shapes[0]
		node.right = shapes[0]
	case 2:
		node.left = shapes[0]
		node.right = shapes[1]
	default:
		axis := bbox.LongestAxis()
		sort.Slice(shapes, func(i, j int) bool {
			return shapes[i].BoundingBox().Center().Axis(axis) <
				shapes[j].BoundingBox().Center().Axis(axis)
		})

		mid := len(shapes) / 2
		node.left = buildBVH(shapes[:mid])
		node.right = buildBVH(shapes[mid:])
	}

	return node
}

// Hit tests the ray against the node box, then against both subtrees with
// the right subtree's interval narrowed by any left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if n.left == nil || !n.bbox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(ray, tMin, tMax, sampler)
	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	rightHit, hitRight := n.right.Hit(ray, tMin, rightMax, sampler)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
