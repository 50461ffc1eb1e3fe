package geometry

import (
	"github.com/cg711/raytracer/pkg/core"
)

// HittableList aggregates shapes and intersects them by linear scan
type HittableList struct {
	Shapes []core.Shape
	bbox   core.AABB
}

// NewHittableList creates a list from the given shapes
func NewHittableList(shapes ...core.Shape) *HittableList {
	list := &HittableList{}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and grows the cached bounding box
func (l *HittableList) Add(shape core.Shape) {
	if len(l.Shapes) == 0 {
		l.bbox = shape.BoundingBox()
	} else {
		l.bbox = l.bbox.Union(shape.BoundingBox())
	}
	l.Shapes = append(l.Shapes, shape)
}

// Hit returns the nearest intersection across all shapes in the list
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar, sampler); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns the union of all contained bounding boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
