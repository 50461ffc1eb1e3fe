package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cg711/raytracer/pkg/core"
)

// LoadOBJ loads a Wavefront OBJ file and returns its triangular faces as
// vertex-position triples. Only vertex positions are consumed; normals and
// texture coordinates in the file are ignored, and faces with more than
// three vertices are skipped.
func LoadOBJ(filename string) ([][3]core.Vec3, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	var vertices []core.Vec3
	var faces [][3]core.Vec3

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex with %d coordinates", lineNum, len(fields)-1)
			}
			v, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			vertices = append(vertices, v)

		case "f":
			// Triangulated faces only
			if len(fields) != 4 {
				continue
			}
			var face [3]core.Vec3
			ok := true
			for i, field := range fields[1:4] {
				idx, err := parseFaceIndex(field, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				if idx < 0 {
					ok = false
					break
				}
				face[i] = vertices[idx]
			}
			if ok {
				faces = append(faces, face)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}

	return faces, nil
}

// parseVertex parses three coordinate fields into a Vec3
func parseVertex(fields []string) (core.Vec3, error) {
	var coords [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vertex coordinate %q", field)
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseFaceIndex parses one face vertex reference ("7", "7/1", "7/1/3" or
// "7//3") into a zero-based vertex index. Negative references count from the
// end of the vertex list, per the OBJ format.
func parseFaceIndex(field string, vertexCount int) (int, error) {
	ref := field
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}

	idx, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", field)
	}
	if idx < 0 {
		idx = vertexCount + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("face index %q out of range", field)
	}
	return idx, nil
}
