package geometry

import (
	"math"

	"github.com/cg711/raytracer/pkg/core"
)

// ConstantMedium is a participating medium of uniform density filling the
// interior of a boundary shape. Rays entering the boundary scatter after an
// exponentially distributed free-flight distance.
type ConstantMedium struct {
	boundary      core.Shape
	negInvDensity float64
	phaseFunction core.Material
}

// NewConstantMedium creates a medium bounded by the given shape. The phase
// function material is typically an isotropic scatterer.
func NewConstantMedium(boundary core.Shape, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: phaseFunction,
	}
}

// Hit samples a scattering event along the ray's traversal of the boundary
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// Entry and exit points against the full ray, so that rays starting
	// inside the medium still see the interior span
	hit1, isHit := m.boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	hit2, isHit := m.boundary.Hit(ray, hit1.T+1e-4, math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	t1, t2 := hit1.T, hit2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceWithinBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceWithinBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:     t,
		Point: ray.At(t),
		// Arbitrary: scattering direction does not depend on the normal
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.phaseFunction,
	}, true
}

// BoundingBox delegates to the boundary shape
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.boundary.BoundingBox()
}
