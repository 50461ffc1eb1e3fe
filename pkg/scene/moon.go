package scene

import (
	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// NewMoonScene builds a single image-textured sphere against a black
// background
func NewMoonScene() (*Scene, error) {
	moonTexture, err := material.NewImageTextureFromFile("textures/moon_texture.jpeg")
	if err != nil {
		return nil, err
	}
	moonSurface := material.NewTexturedLambertian(moonTexture)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, moonSurface),
	)

	return &Scene{
		Name: "moon",
		Camera: renderer.CameraConfig{
			AspectRatio:   16.0 / 9.0,
			ImageWidth:    400,
			VFov:          20,
			LookFrom:      core.NewVec3(0, 0, 12),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0, 0, 0),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
		World:    world,
	}, nil
}
