package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cg711/raytracer/pkg/core"
)

// randomSpheres builds a deterministic cloud of spheres for equivalence tests
func randomSpheres(n int, seed int64) []core.Shape {
	random := rand.New(rand.NewSource(seed))
	shapes := make([]core.Shape, 0, n)
	for i := 0; i < n; i++ {
		center := core.NewVec3(
			20*random.Float64()-10,
			20*random.Float64()-10,
			20*random.Float64()-10,
		)
		radius := 0.2 + random.Float64()
		shapes = append(shapes, NewSphere(center, radius, testMaterial()))
	}
	return shapes
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	shapes := randomSpheres(50, 3)
	list := NewHittableList(shapes...)
	bvh := NewBVH(shapes)

	random := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		origin := core.NewVec3(
			40*random.Float64()-20,
			40*random.Float64()-20,
			40*random.Float64()-20,
		)
		direction := core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		if direction.NearZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		listHit, listIsHit := list.Hit(ray, 0.001, math.Inf(1), testSampler())
		bvhHit, bvhIsHit := bvh.Hit(ray, 0.001, math.Inf(1), testSampler())

		if listIsHit != bvhIsHit {
			t.Fatalf("Ray %d: linear scan hit=%t, BVH hit=%t", i, listIsHit, bvhIsHit)
		}
		if !listIsHit {
			continue
		}

		if math.Abs(listHit.T-bvhHit.T) > 1e-9 {
			t.Fatalf("Ray %d: linear scan t=%v, BVH t=%v", i, listHit.T, bvhHit.T)
		}
		if listHit.Point.Subtract(bvhHit.Point).Length() > 1e-9 {
			t.Fatalf("Ray %d: hit points differ: %v vs %v", i, listHit.Point, bvhHit.Point)
		}
		if listHit.Material != bvhHit.Material {
			t.Fatalf("Ray %d: material handles differ", i)
		}
	}
}

func TestBVH_SingleShape(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial())
	bvh := NewBVH([]core.Shape{sphere})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%v", hit.T)
	}
}

func TestBVH_PreservesInputOrder(t *testing.T) {
	shapes := randomSpheres(10, 5)
	original := make([]core.Shape, len(shapes))
	copy(original, shapes)

	NewBVH(shapes)

	for i := range shapes {
		if shapes[i] != original[i] {
			t.Fatal("Expected BVH construction to leave the input slice unmodified")
		}
	}
}

func TestBVH_BoundingBoxCoversAllShapes(t *testing.T) {
	shapes := randomSpheres(20, 11)
	bvh := NewBVH(shapes)
	bbox := bvh.BoundingBox()

	for i, shape := range shapes {
		sb := shape.BoundingBox()
		for axis := 0; axis < 3; axis++ {
			outer, inner := bbox.AxisInterval(axis), sb.AxisInterval(axis)
			if inner.Min < outer.Min-1e-9 || inner.Max > outer.Max+1e-9 {
				t.Fatalf("Shape %d axis %d not contained: [%v, %v] outside [%v, %v]",
					i, axis, inner.Min, inner.Max, outer.Min, outer.Max)
			}
		}
	}
}
