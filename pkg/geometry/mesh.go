package geometry

import (
	"fmt"

	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/loaders"
)

// NewMesh loads a Wavefront OBJ file and returns its triangular faces as a
// list of triangles sharing the given material. Faces with more than three
// vertices are skipped by the loader.
func NewMesh(filename string, material core.Material) (*HittableList, error) {
	faces, err := loaders.LoadOBJ(filename)
	if err != nil {
		return nil, fmt.Errorf("loading mesh %s: %w", filename, err)
	}

	list := NewHittableList()
	for _, face := range faces {
		list.Add(NewTriangleFromVertices(face[0], face[1], face[2], material))
	}
	return list, nil
}
