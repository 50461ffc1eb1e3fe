package scene

import (
	"math/rand"

	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// NewLightScene builds an emissive quad and sphere lighting a Perlin-ground
// scene against a black background
func NewLightScene() (*Scene, error) {
	random := rand.New(rand.NewSource(7))
	perlinTexture := material.NewNoiseTexture(4, random)
	perlinSurface := material.NewTexturedLambertian(perlinTexture)
	diffuseLight := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, perlinSurface),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, perlinSurface),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), diffuseLight),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, diffuseLight),
	)

	return &Scene{
		Name: "light",
		Camera: renderer.CameraConfig{
			AspectRatio:   16.0 / 9.0,
			ImageWidth:    400,
			VFov:          20,
			LookFrom:      core.NewVec3(26, 3, 6),
			LookAt:        core.NewVec3(0, 2, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0, 0, 0),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
		World:    world,
	}, nil
}
