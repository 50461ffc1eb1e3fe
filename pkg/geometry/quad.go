package geometry

import (
	"math"

	"github.com/cg711/raytracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (oriented by the inward flag)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: normal · p = D
	W        core.Vec3     // Cached n / (n·n) with n = u × v, for planar coordinates
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	return newQuad(corner, u, v, material, false)
}

// NewInwardQuad creates a quad whose normal is flipped to point against
// u × v. Used for skybox faces viewed from inside.
func NewInwardQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	return newQuad(corner, u, v, material, true)
}

func newQuad(corner, u, v core.Vec3, material core.Material, inwardNormal bool) *Quad {
	// W stays tied to u × v so the planar coordinates keep their sign when
	// the normal is flipped
	n := u.Cross(v)
	normal := n.Normalize()
	if inwardNormal {
		normal = normal.Negate()
	}

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        n.Multiply(1.0 / n.Dot(n)),
		bbox: core.NewAABBFromCorners(corner, corner.Add(u).Add(v)).
			Union(core.NewAABBFromCorners(corner.Add(u), corner.Add(v))),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	// Recover planar coordinates of the hit point
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
