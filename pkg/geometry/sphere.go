package geometry

import (
	"math"

	"github.com/cg711/raytracer/pkg/core"
)

// Sphere represents a sphere shape. The center may move linearly over the
// shutter interval for motion blur: at time t it sits at Center + t*centerVec.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material

	moving    bool
	centerVec core.Vec3 // Center1 - Center0 for moving spheres
	bbox      core.AABB
}

// NewSphere creates a new static sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABBFromCorners(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere whose center moves from center0 at time 0
// to center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, material core.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromCorners(center0.Subtract(rvec), center0.Add(rvec))
	box1 := core.NewAABBFromCorners(center1.Subtract(rvec), center1.Add(rvec))
	return &Sphere{
		Center:    center0,
		Radius:    radius,
		Material:  material,
		moving:    true,
		centerVec: center1.Subtract(center0),
		bbox:      box0.Union(box1),
	}
}

// centerAt returns the sphere center at the given ray time
func (s *Sphere) centerAt(time float64) core.Vec3 {
	if !s.moving {
		return s.Center
	}
	return s.Center.Add(s.centerVec.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer intersection point first, then the farther one
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hit.UV = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u in [0,1] wraps around the Y axis from X=-1; v in [0,1] runs pole to pole.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere. For a
// moving sphere this is the union of the boxes at the segment endpoints.
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}
