package material

import (
	"testing"

	"github.com/cg711/raytracer/pkg/core"
)

// twoByTwo is a tiny test image:
//
//	red   green   (top row)
//	blue  white   (bottom row)
func twoByTwo() *ImageTexture {
	return NewImageTexture(2, 2, []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	})
}

func TestImageTexture_SamplesPixels(t *testing.T) {
	texture := twoByTwo()

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom left", core.NewVec2(0.25, 0.25), core.NewVec3(0, 0, 1)},
		{"bottom right", core.NewVec2(0.75, 0.25), core.NewVec3(1, 1, 1)},
		{"top left", core.NewVec2(0.25, 0.75), core.NewVec3(1, 0, 0)},
		{"top right", core.NewVec2(0.75, 0.75), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texture.Value(tt.uv, core.Vec3{})
			if got != tt.expected {
				t.Errorf("Value(%v) = %v, want %v", tt.uv, got, tt.expected)
			}
		})
	}
}

func TestImageTexture_ClampsCoordinates(t *testing.T) {
	texture := twoByTwo()

	// Out-of-range coordinates clamp to the border pixels
	if got := texture.Value(core.NewVec2(-1, -1), core.Vec3{}); got != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected clamp to bottom-left pixel, got %v", got)
	}
	if got := texture.Value(core.NewVec2(2, 2), core.Vec3{}); got != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected clamp to top-right pixel, got %v", got)
	}
}

func TestImageTexture_MissingDataReturnsDebugCyan(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)

	got := texture.Value(core.NewVec2(0.5, 0.5), core.Vec3{})
	if got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected debug cyan, got %v", got)
	}
}
