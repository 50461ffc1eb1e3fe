package scene

import (
	"fmt"

	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/renderer"
)

// Scene bundles a world with the camera and sampling configuration used to
// render it
type Scene struct {
	Name     string
	Camera   renderer.CameraConfig
	Sampling renderer.SamplingConfig
	World    *geometry.HittableList
}

// Builder constructs a scene. Builders that load assets from disk return an
// error when an asset is missing or malformed.
type Builder func() (*Scene, error)

// Entry describes one selectable scene
type Entry struct {
	Number      int
	Name        string
	Description string
	Build       Builder
}

// Registry lists the built-in scenes in selection order
func Registry() []Entry {
	return []Entry{
		{1, "moon", "image-textured sphere", NewMoonScene},
		{2, "perlin", "Perlin turbulence spheres", NewPerlinScene},
		{3, "quads", "five colored quads", NewQuadsScene},
		{4, "light", "emissive quad and sphere over Perlin ground", NewLightScene},
		{5, "cornell-smoke", "Cornell box with two smoke volumes", NewCornellSmokeScene},
		{6, "diamond-block", "image-textured box on a checkered floor", NewDiamondBlockScene},
		{7, "tri", "solid and textured triangles", NewTriScene},
		{8, "obj", "OBJ mesh with skybox and defocus blur", NewObjScene},
		{9, "skybox", "six image-textured inward faces", NewSkyboxScene},
		{10, "ray-intersection", "sphere and triangle intersection test", NewRayIntersectionScene},
		{11, "volume", "dense medium in a sphere boundary", NewVolumeScene},
		{12, "motion-blur", "sphere falling through the shutter interval", NewMotionBlurScene},
		{13, "perlin-balls", "raw and turbulent noise side by side", NewPerlinBallsScene},
		{14, "materials", "lambertian, metal and glass under three lights", NewMaterialsScene},
	}
}

// Lookup returns the scene entry with the given number
func Lookup(number int) (Entry, error) {
	for _, entry := range Registry() {
		if entry.Number == number {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown scene number %d", number)
}
