package scene

import (
	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// NewDiamondBlockScene builds an image-textured box resting on a checkered
// ground sphere
func NewDiamondBlockScene() (*Scene, error) {
	checker := material.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	diamondTexture, err := material.NewImageTextureFromFile("textures/diamond.jpg")
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2),
			material.NewTexturedLambertian(diamondTexture)),
	)

	return &Scene{
		Name: "diamond-block",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          20,
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0.70, 0.80, 1.00),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 400, MaxDepth: 50},
		World:    world,
	}, nil
}
