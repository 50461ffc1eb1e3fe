package integrator

import (
	"math/rand"
	"testing"

	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
)

func testSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func TestPathTracer_DepthZeroIsBlack(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1,
			material.NewDiffuseLight(core.NewVec3(10, 10, 10))),
	)
	pt := NewPathTracer(0, core.NewVec3(0.5, 0.7, 1.0))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, world, testSampler())

	if color.Length() > 0 {
		t.Errorf("Expected black at depth 0, got %v", color)
	}
}

func TestPathTracer_MissReturnsBackground(t *testing.T) {
	world := geometry.NewHittableList()
	background := core.NewVec3(0.5, 0.7, 1.0)
	pt := NewPathTracer(10, background)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color := pt.RayColor(ray, world, testSampler())

	if color != background {
		t.Errorf("Expected background %v, got %v", background, color)
	}
}

func TestPathTracer_EmitterReturnsEmission(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewDiffuseLight(emission)),
	)
	pt := NewPathTracer(10, core.Vec3{})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, world, testSampler())

	if color.Subtract(emission).Length() > 1e-12 {
		t.Errorf("Expected emission %v, got %v", emission, color)
	}
}

func TestPathTracer_AttenuationCompounds(t *testing.T) {
	// A gray diffuse sphere lit only by the background: every path
	// terminates on the background, so radiance is bounded by it
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	background := core.NewVec3(1, 1, 1)
	pt := NewPathTracer(50, background)
	sampler := testSampler()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for i := 0; i < 100; i++ {
		color := pt.RayColor(ray, world, sampler)
		if color.X > 1 || color.Y > 1 || color.Z > 1 {
			t.Fatalf("Expected radiance bounded by background, got %v", color)
		}
		if color.X < 0 {
			t.Fatalf("Expected non-negative radiance, got %v", color)
		}
	}
}

func TestPathTracer_SelfIntersectionClip(t *testing.T) {
	// A ray starting exactly on a surface must not re-hit it at t ~ 0
	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
			material.NewDiffuseLight(core.NewVec3(1, 1, 1))),
	)
	pt := NewPathTracer(10, core.NewVec3(0.25, 0.25, 0.25))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	color := pt.RayColor(ray, world, testSampler())

	// The ray leaves the quad's plane and escapes to the background
	if color != core.NewVec3(0.25, 0.25, 0.25) {
		t.Errorf("Expected background, got %v", color)
	}
}

func TestPathTracer_MediumScattersTowardLight(t *testing.T) {
	// A ray through dense smoke in front of an enclosing emitter still
	// picks up energy by multiple scattering
	boundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 2,
		material.NewLambertian(core.Vec3{}))
	world := geometry.NewHittableList(
		geometry.NewConstantMedium(boundary, 0.5, material.NewIsotropic(core.NewVec3(1, 1, 1))),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 50, material.NewDiffuseLight(core.NewVec3(2, 2, 2))),
	)
	pt := NewPathTracer(50, core.Vec3{})
	sampler := testSampler()

	accum := core.Vec3{}
	const n = 200
	for i := 0; i < n; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1))
		accum = accum.Add(pt.RayColor(ray, world, sampler))
	}
	mean := accum.Multiply(1.0 / n)

	if mean.X < 0.5 {
		t.Errorf("Expected non-black illumination through the medium, got %v", mean)
	}
}

func TestPathTracer_DeterministicForFixedSeed(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1,
			material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
	)
	pt := NewPathTracer(20, core.NewVec3(0.5, 0.7, 1.0))

	ray := core.NewRayAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0.5)
	a := pt.RayColor(ray, world, core.NewSeededSampler(9))
	b := pt.RayColor(ray, world, core.NewSeededSampler(9))

	if a != b {
		t.Errorf("Expected identical results for identical seeds, got %v and %v", a, b)
	}
}

func TestPathTracer_FarAwayRayHitsNothing(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	background := core.NewVec3(0.1, 0.2, 0.3)
	pt := NewPathTracer(10, background)

	ray := core.NewRay(core.NewVec3(0, 100, 0), core.NewVec3(1, 0, 0))
	if color := pt.RayColor(ray, world, testSampler()); color != background {
		t.Errorf("Expected background, got %v", color)
	}
}
