package scene

import (
	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/material"
	"github.com/cg711/raytracer/pkg/renderer"
)

// loadSkybox builds the six inward-facing emissive faces of the skybox
func loadSkybox(radius float64) (*geometry.HittableList, error) {
	faces := make([]core.Material, 6)
	for i, name := range []string{
		"skybox/left.jpg", "skybox/right.jpg", "skybox/front.jpg",
		"skybox/back.jpg", "skybox/top.jpg", "skybox/bottom.jpg",
	} {
		texture, err := material.NewImageTextureFromFile(name)
		if err != nil {
			return nil, err
		}
		faces[i] = material.NewTexturedDiffuseLight(texture)
	}

	return geometry.NewCubeMap(faces[0], faces[1], faces[2], faces[3], faces[4], faces[5], radius), nil
}

// NewSkyboxScene builds an empty world enclosed by the image cube map
func NewSkyboxScene() (*Scene, error) {
	skybox, err := loadSkybox(100)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList()
	for _, face := range skybox.Shapes {
		world.Add(face)
	}

	return &Scene{
		Name: "skybox",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          90,
			LookFrom:      core.NewVec3(0, 11, 10),
			LookAt:        core.NewVec3(200, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			FocusDistance: 10,
			Background:    core.NewVec3(0.7, 0.5, 1.0),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 500},
		World:    world,
	}, nil
}

// NewObjScene builds a metal OBJ mesh over a checkered ground, enclosed by
// the skybox and rendered with defocus blur
func NewObjScene() (*Scene, error) {
	checker := material.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	red := material.NewMetal(core.NewVec3(0.65, 0.05, 0.05), 0.5)

	mesh, err := geometry.NewMesh("models/sword.obj", red)
	if err != nil {
		return nil, err
	}

	skybox, err := loadSkybox(100)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
		mesh,
	)
	for _, face := range skybox.Shapes {
		world.Add(face)
	}

	return &Scene{
		Name: "obj",
		Camera: renderer.CameraConfig{
			AspectRatio:   1.0,
			ImageWidth:    400,
			VFov:          80,
			LookFrom:      core.NewVec3(0, 5, 10),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			DefocusAngle:  3,
			FocusDistance: 10,
			Background:    core.NewVec3(0.7, 0.5, 1.0),
		},
		Sampling: renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
		World:    world,
	}, nil
}
