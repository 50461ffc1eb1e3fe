package integrator

import (
	"math"

	"github.com/cg711/raytracer/pkg/core"
)

// tMinEpsilon is the self-intersection clip: hits closer than this along a
// scattered ray are ignored so surfaces do not shadow themselves
const tMinEpsilon = 0.001

// PathTracer estimates the light transport integral by recursive Monte
// Carlo sampling with a fixed depth cutoff
type PathTracer struct {
	MaxDepth   int       // Maximum ray bounce depth
	Background core.Vec3 // Radiance returned for rays that escape the scene
}

// NewPathTracer creates a path tracer with the given depth and background
func NewPathTracer(maxDepth int, background core.Vec3) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth, Background: background}
}

// RayColor returns the estimated radiance carried by the ray through the world
func (pt *PathTracer) RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, pt.MaxDepth, world, sampler)
}

func (pt *PathTracer) rayColor(ray core.Ray, depth int, world core.Shape, sampler core.Sampler) core.Vec3 {
	// No more light is gathered past the bounce limit
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, tMinEpsilon, math.Inf(1), sampler)
	if !isHit {
		return pt.Background
	}

	emitted := hit.Material.Emitted(hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(
		pt.rayColor(scatter.Scattered, depth-1, world, sampler)))
}
