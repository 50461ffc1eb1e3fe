package scene

import (
	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// NewCornellSmokeScene builds the classic Cornell box with the two boxes
// replaced by constant-density smoke volumes
func NewCornellSmokeScene() (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light),
		geometry.NewQuad(core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	)

	var box1 core.Shape = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	box1 = geometry.NewRotateY(box1, 15)
	box1 = geometry.NewTranslate(box1, core.NewVec3(265, 0, 295))

	var box2 core.Shape = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	box2 = geometry.NewRotateY(box2, -18)
	box2 = geometry.NewTranslate(box2, core.NewVec3(130, 0, 65))

	world.Add(geometry.NewConstantMedium(box1, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))))
	world.Add(geometry.NewConstantMedium(box2, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	return &Scene{
		Name: "cornell-smoke",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          40,
			LookFrom:      core.NewVec3(278, 278, -800),
			LookAt:        core.NewVec3(278, 278, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0, 0, 0),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50},
		World:    world,
	}, nil
}
