package scene

import (
	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// NewVolumeScene builds a dense dark medium bounded by a sphere, floating
// over a checkered ground
func NewVolumeScene() (*Scene, error) {
	boundary := geometry.NewSphere(core.NewVec3(0, 3, 0), 3,
		material.NewLambertian(core.NewVec3(0, 0, 0)))
	checker := material.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	world := geometry.NewHittableList(
		geometry.NewConstantMedium(boundary, 0.5, material.NewIsotropic(core.NewVec3(0, 0, 0))),
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	)

	return &Scene{
		Name: "volume",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          90,
			LookFrom:      core.NewVec3(0, 8, 6),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(1, 1, 1),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 500},
		World:    world,
	}, nil
}

// NewMotionBlurScene builds a single sphere falling from (0,3,0) to the
// origin over the shutter interval
func NewMotionBlurScene() (*Scene, error) {
	world := geometry.NewHittableList(
		geometry.NewMovingSphere(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 0), 3,
			material.NewLambertian(core.NewVec3(0, 0, 0))),
	)

	return &Scene{
		Name: "motion-blur",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          90,
			LookFrom:      core.NewVec3(0, 8, 6),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(1, 1, 1),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 500},
		World:    world,
	}, nil
}
