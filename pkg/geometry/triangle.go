package geometry

import (
	"math"

	"github.com/cg711/raytracer/pkg/core"
)

// Triangle represents a triangle defined by a corner and two edge vectors,
// sharing the quad's plane construction but with a barycentric interior test
type Triangle struct {
	Corner   core.Vec3
	U        core.Vec3
	V        core.Vec3
	Normal   core.Vec3
	Material core.Material
	D        float64
	W        core.Vec3
	bbox     core.AABB
}

// NewTriangle creates a triangle with vertices Corner, Corner+U and Corner+V
func NewTriangle(corner, u, v core.Vec3, material core.Material) *Triangle {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Triangle{
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

// NewTriangleFromVertices creates a triangle from three vertex positions
func NewTriangleFromVertices(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return NewTriangle(v0, v1.Subtract(v0), v2.Subtract(v0), material)
}

// Hit tests if a ray intersects with the triangle
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(tr.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (tr.D - ray.Origin.Dot(tr.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(tr.Corner)
	alpha := tr.W.Dot(planar.Cross(tr.V))
	beta := tr.W.Dot(tr.U.Cross(planar))

	// Barycentric interior test
	if alpha < 0 || beta < 0 || alpha+beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: tr.Material,
	}
	hit.SetFaceNormal(ray, tr.Normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (tr *Triangle) BoundingBox() core.AABB {
	return tr.bbox
}
