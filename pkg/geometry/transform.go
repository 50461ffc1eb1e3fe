package geometry

import (
	"math"

	"github.com/cg711/raytracer/pkg/core"
)

// Translate wraps a shape and shifts it by a fixed offset. The ray is moved
// into object space for the inner test and the hit point moved back out.
type Translate struct {
	inner  core.Shape
	offset core.Vec3
	bbox   core.AABB
}

// NewTranslate creates a translated view of the given shape
func NewTranslate(inner core.Shape, offset core.Vec3) *Translate {
	return &Translate{
		inner:  inner,
		offset: offset,
		bbox:   inner.BoundingBox().Translate(offset),
	}
}

// Hit intersects the offset ray against the inner shape
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	offsetRay := core.Ray{
		Origin:    ray.Origin.Subtract(t.offset),
		Direction: ray.Direction,
		Time:      ray.Time,
	}

	hit, isHit := t.inner.Hit(offsetRay, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.offset)
	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY wraps a shape and rotates it around the y-axis
type RotateY struct {
	inner    core.Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY creates a view of the given shape rotated by angle degrees
// around the y-axis
func NewRotateY(inner core.Shape, angleDegrees float64) *RotateY {
	radians := core.DegreesToRadians(angleDegrees)
	r := &RotateY{
		inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Envelope of the eight rotated corners of the inner box
	innerBox := inner.BoundingBox()
	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := innerBox.X.Min + float64(i)*innerBox.X.Size()
				y := innerBox.Y.Min + float64(j)*innerBox.Y.Size()
				z := innerBox.Z.Min + float64(k)*innerBox.Z.Size()
				corners = append(corners, r.rotate(core.NewVec3(x, y, z)))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(corners...)

	return r
}

// rotate applies the +theta rotation around the y-axis
func (r *RotateY) rotate(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*p.X+r.sinTheta*p.Z,
		p.Y,
		-r.sinTheta*p.X+r.cosTheta*p.Z,
	)
}

// rotateInverse applies the -theta rotation around the y-axis
func (r *RotateY) rotateInverse(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*p.X-r.sinTheta*p.Z,
		p.Y,
		r.sinTheta*p.X+r.cosTheta*p.Z,
	)
}

// Hit rotates the ray into object space, intersects the inner shape, and
// rotates the hit point and normal back into world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	rotatedRay := core.Ray{
		Origin:    r.rotateInverse(ray.Origin),
		Direction: r.rotateInverse(ray.Direction),
		Time:      ray.Time,
	}

	hit, isHit := r.inner.Hit(rotatedRay, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = r.rotate(hit.Point)
	hit.Normal = r.rotate(hit.Normal)
	return hit, true
}

// BoundingBox returns the envelope of the rotated inner box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
