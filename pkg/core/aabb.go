package core

// minAxisWidth is the smallest extent an AABB axis may have. Planar
// primitives (a quad lying exactly in z = k) would otherwise produce a
// degenerate slab that the hit test can never enter.
const minAxisWidth = 1e-4

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates an AABB from per-axis intervals, padded to the minimum width
func NewAABB(x, y, z Interval) AABB {
	aabb := AABB{X: x, Y: y, Z: z}
	aabb.padToMinimums()
	return aabb
}

// NewAABBFromCorners creates an AABB spanning two opposite corner points.
// The corners may be given in any order.
func NewAABBFromCorners(a, b Vec3) AABB {
	aabb := AABB{
		X: Interval{Min: min(a.X, b.X), Max: max(a.X, b.X)},
		Y: Interval{Min: min(a.Y, b.Y), Max: max(a.Y, b.Y)},
		Z: Interval{Min: min(a.Z, b.Z), Max: max(a.Z, b.Z)},
	}
	aabb.padToMinimums()
	return aabb
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	}

	minPt := points[0]
	maxPt := points[0]
	for _, p := range points[1:] {
		minPt.X = min(minPt.X, p.X)
		minPt.Y = min(minPt.Y, p.Y)
		minPt.Z = min(minPt.Z, p.Z)

		maxPt.X = max(maxPt.X, p.X)
		maxPt.Y = max(maxPt.Y, p.Y)
		maxPt.Z = max(maxPt.Z, p.Z)
	}

	return NewAABBFromCorners(minPt, maxPt)
}

// padToMinimums widens any axis narrower than minAxisWidth
func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() < minAxisWidth {
		aabb.X = aabb.X.Expand(minAxisWidth)
	}
	if aabb.Y.Size() < minAxisWidth {
		aabb.Y = aabb.Y.Expand(minAxisWidth)
	}
	if aabb.Z.Size() < minAxisWidth {
		aabb.Z = aabb.Z.Expand(minAxisWidth)
	}
}

// AxisInterval returns the interval for the given axis (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: NewIntervalUnion(aabb.X, other.X),
		Y: NewIntervalUnion(aabb.Y, other.Y),
		Z: NewIntervalUnion(aabb.Z, other.Z),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return Vec3{
		X: 0.5 * (aabb.X.Min + aabb.X.Max),
		Y: 0.5 * (aabb.Y.Min + aabb.Y.Max),
		Z: 0.5 * (aabb.Z.Min + aabb.Z.Max),
	}
}

// Translate returns the AABB shifted by the given offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: Interval{Min: aabb.X.Min + offset.X, Max: aabb.X.Max + offset.X},
		Y: Interval{Min: aabb.Y.Min + offset.Y, Max: aabb.Y.Max + offset.Y},
		Z: Interval{Min: aabb.Z.Min + offset.Z, Max: aabb.Z.Max + offset.Z},
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	sx, sy, sz := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if sx > sy && sx > sz {
		return 0
	}
	if sy > sz {
		return 1
	}
	return 2
}

// Hit tests if a ray intersects this AABB within [tMin, tMax] using the
// slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = max(tMin, t0)
		tMax = min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}
	return true
}
