package geometry

import (
	"github.com/cg711/raytracer/pkg/core"
)

// NewBox returns the six quads covering the axis-aligned box spanning two
// opposite corners a and b, all with the same material
func NewBox(a, b core.Vec3, material core.Material) *HittableList {
	minPt := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	maxPt := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	dx := core.NewVec3(maxPt.X-minPt.X, 0, 0)
	dy := core.NewVec3(0, maxPt.Y-minPt.Y, 0)
	dz := core.NewVec3(0, 0, maxPt.Z-minPt.Z)

	return NewHittableList(
		NewQuad(core.NewVec3(minPt.X, minPt.Y, maxPt.Z), dx, dy, material),          // front
		NewQuad(core.NewVec3(maxPt.X, minPt.Y, maxPt.Z), dz.Negate(), dy, material), // right
		NewQuad(core.NewVec3(maxPt.X, minPt.Y, minPt.Z), dx.Negate(), dy, material), // back
		NewQuad(core.NewVec3(minPt.X, minPt.Y, minPt.Z), dz, dy, material),          // left
		NewQuad(core.NewVec3(minPt.X, maxPt.Y, maxPt.Z), dx, dz.Negate(), material), // top
		NewQuad(core.NewVec3(minPt.X, minPt.Y, minPt.Z), dx, dz, material),          // bottom
	)
}

// NewCubeMap returns six inward-facing quads forming a skybox of the given
// radius centered at the origin. Each face carries its own material,
// typically an emissive image texture.
func NewCubeMap(left, right, front, back, top, bottom core.Material, radius float64) *HittableList {
	dx := core.NewVec3(2*radius, 0, 0)
	dy := core.NewVec3(0, 2*radius, 0)
	dz := core.NewVec3(0, 0, 2*radius)

	nnn := core.NewVec3(-radius, -radius, -radius)

	return NewHittableList(
		// u × v already points inward on the right, back and top faces, so
		// only the other three need their normal flipped
		NewInwardQuad(nnn, dz, dy, left),                                     // left
		NewQuad(core.NewVec3(radius, -radius, -radius), dz, dy, right),       // right
		NewInwardQuad(core.NewVec3(-radius, -radius, radius), dx, dy, front), // front
		NewQuad(nnn, dx, dy, back),                                           // back
		NewQuad(core.NewVec3(-radius, radius, -radius), dx, dz, top),         // top
		NewInwardQuad(nnn, dx, dz, bottom),                                   // bottom
	)
}
