package material

import (
	"math"

	"github.com/cg711/raytracer/pkg/core"
)

// SolidColor provides a uniform color everywhere
type SolidColor struct {
	Albedo core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(albedo core.Vec3) *SolidColor {
	return &SolidColor{Albedo: albedo}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Albedo
}

// Checker is a spatial checkerboard alternating two textures on a 3D grid
type Checker struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewChecker creates a checker texture with the given cell scale
func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture alternating two solid colors
func NewCheckerColors(scale float64, c1, c2 core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(c1), NewSolidColor(c2))
}

// Value picks the even or odd texture from the integer lattice cell
// containing the hit point
func (c *Checker) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	xInt := int(math.Floor(c.InvScale * point.X))
	yInt := int(math.Floor(c.InvScale * point.Y))
	zInt := int(math.Floor(c.InvScale * point.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.Even.Value(uv, point)
	}
	return c.Odd.Value(uv, point)
}
