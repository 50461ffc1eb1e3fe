package scene

import (
	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// NewTriScene builds a solid-colored triangle next to an image-textured one
func NewTriScene() (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))

	diamondTexture, err := material.NewImageTextureFromFile("textures/diamond.jpg")
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList(
		geometry.NewTriangle(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), red),
		geometry.NewTriangle(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0),
			material.NewTexturedLambertian(diamondTexture)),
	)

	return &Scene{
		Name: "tri",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          80,
			LookFrom:      core.NewVec3(0, 0, 9),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0.7, 0.5, 1.0),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
		World:    world,
	}, nil
}

// NewRayIntersectionScene builds a large sphere overlapping a triangle,
// useful for eyeballing intersection behavior
func NewRayIntersectionScene() (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(-2, 0, 0), 3, gray),
		geometry.NewTriangle(core.NewVec3(5, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), red),
	)

	return &Scene{
		Name: "ray-intersection",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          90,
			LookFrom:      core.NewVec3(0, 11, 10),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0.7, 0.5, 1.0),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 500},
		World:    world,
	}, nil
}
