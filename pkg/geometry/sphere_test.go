package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/material"
)

func testSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func testMaterial() core.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), testSampler())
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FromCenter(t *testing.T) {
	// A ray starting at the center exits at t = r/|dir| with the outward
	// normal matching the direction
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, testMaterial())

	directions := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 2, -2),
	}

	for _, dir := range directions {
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), testSampler())
		if !isHit {
			t.Fatalf("Expected hit for direction %v", dir)
		}

		expectedT := 2.0 / dir.Length()
		if math.Abs(hit.T-expectedT) > 1e-9 {
			t.Errorf("Expected t=%v, got t=%v", expectedT, hit.T)
		}

		outward := dir.Normalize()
		// Normal is stored against the ray, so the outward normal flips
		if hit.Normal.Add(outward).Length() > 1e-9 {
			t.Errorf("Expected stored normal %v, got %v", outward.Negate(), hit.Normal)
		}
		if hit.FrontFace {
			t.Error("Expected back face hit from inside the sphere")
		}
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), testSampler())

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// tMax before the near intersection
	if hit, isHit := sphere.Hit(ray, 0.001, 0.5, testSampler()); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// tMin past both intersections
	if hit, isHit := sphere.Hit(ray, 3.5, math.Inf(1), testSampler()); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// tMin between the two roots picks the far root
	hit, isHit := sphere.Hit(ray, 1.5, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("Expected far root hit")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root t=3, got t=%f", hit.T)
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec2
	}{
		{"+x", core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{"-x", core.NewVec3(-1, 0, 0), core.NewVec2(0, 0.5)},
		{"+y pole", core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1)},
		{"-y pole", core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0)},
		{"+z", core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
		{"-z", core.NewVec3(0, 0, -1), core.NewVec2(0.75, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphereUV(tt.point)
			if math.Abs(uv.X-tt.expected.X) > 1e-9 || math.Abs(uv.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Expected UV (%v, %v), got (%v, %v)",
					tt.expected.X, tt.expected.Y, uv.X, uv.Y)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, testMaterial())
	bbox := sphere.BoundingBox()

	if bbox.X.Min != 0.5 || bbox.X.Max != 1.5 {
		t.Errorf("Expected x interval [0.5, 1.5], got [%v, %v]", bbox.X.Min, bbox.X.Max)
	}
	if bbox.Y.Min != 1.5 || bbox.Y.Max != 2.5 {
		t.Errorf("Expected y interval [1.5, 2.5], got [%v, %v]", bbox.Y.Min, bbox.Y.Max)
	}
}

func TestMovingSphere_CenterInterpolation(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 0), 1, testMaterial())

	// A ray fired at time 1 sees the sphere at the destination center
	rayAtOne := core.NewRayAt(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 1.0)
	hit, isHit := sphere.Hit(rayAtOne, 0.001, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("Expected hit at time 1")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}

	// The same ray at time 0 misses: the sphere is still at (0,3,0)
	rayAtZero := core.NewRayAt(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0.0)
	if _, isHit := sphere.Hit(rayAtZero, 0.001, math.Inf(1), testSampler()); isHit {
		t.Error("Expected miss at time 0")
	}
}

func TestMovingSphere_BoundingBoxSpansPath(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 0), 1, testMaterial())
	bbox := sphere.BoundingBox()

	// Union of the endpoint boxes: y spans [-1, 4]
	if math.Abs(bbox.Y.Min-(-1)) > 1e-9 || math.Abs(bbox.Y.Max-4) > 1e-9 {
		t.Errorf("Expected y interval [-1, 4], got [%v, %v]", bbox.Y.Min, bbox.Y.Max)
	}
	if math.Abs(bbox.X.Min-(-1)) > 1e-9 || math.Abs(bbox.X.Max-1) > 1e-9 {
		t.Errorf("Expected x interval [-1, 1], got [%v, %v]", bbox.X.Min, bbox.X.Max)
	}
}
