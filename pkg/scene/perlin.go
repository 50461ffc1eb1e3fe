package scene

import (
	"math/rand"

	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// NewPerlinScene builds two turbulence-textured spheres: a ground ball and
// a small one resting on it
func NewPerlinScene() (*Scene, error) {
	random := rand.New(rand.NewSource(7))
	perlinTexture := material.NewNoiseTexture(4, random)
	perlinSurface := material.NewTexturedLambertian(perlinTexture)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, perlinSurface),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, perlinSurface),
	)

	return &Scene{
		Name: "perlin",
		Camera: renderer.CameraConfig{
			AspectRatio:   16.0 / 9.0,
			ImageWidth:    400,
			VFov:          20,
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0.7, 0.5, 1.0),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
		World:    world,
	}, nil
}

// NewPerlinBallsScene builds raw noise next to turbulent noise on a
// checkered floor
func NewPerlinBallsScene() (*Scene, error) {
	random := rand.New(rand.NewSource(7))
	rawNoise := material.NewNoiseTexture(0, random)
	turbulentNoise := material.NewNoiseTexture(4, random)
	checker := material.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(-3.5, 3, 0), 3, material.NewTexturedLambertian(rawNoise)),
		geometry.NewSphere(core.NewVec3(3.5, 3, 0), 3, material.NewTexturedLambertian(turbulentNoise)),
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	)

	return &Scene{
		Name: "perlin-balls",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          90,
			LookFrom:      core.NewVec3(0, 9, 7),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(1, 1, 1),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 500},
		World:    world,
	}, nil
}
