package scene

import (
	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// NewMaterialsScene lines up lambertian, metal and glass spheres under a
// row of small lights
func NewMaterialsScene() (*Scene, error) {
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	checker := material.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(-3, 3, 0), 1, material.NewLambertian(core.NewVec3(0.5, 1, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 3, 0), 1, material.NewMetal(core.NewVec3(1, 0.5, 0.5), 0.5)),
		geometry.NewSphere(core.NewVec3(3, 3, 0), 1, material.NewDielectric(0.5)),
		geometry.NewSphere(core.NewVec3(-3, 6, -1), 0.5, light),
		geometry.NewSphere(core.NewVec3(0, 6, -1), 0.5, light),
		geometry.NewSphere(core.NewVec3(3, 6, -1), 0.5, light),
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	)

	return &Scene{
		Name: "materials",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          90,
			LookFrom:      core.NewVec3(0, 3, -5),
			LookAt:        core.NewVec3(0, 3, 10),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0.5, 0.5, 0.5),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 500},
		World:    world,
	}, nil
}
