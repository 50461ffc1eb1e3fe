package material

import (
	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/loaders"
)

// ImageTexture samples colors from a decoded raster image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates an image texture from decoded pixel data
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// NewImageTextureFromFile decodes the given image file into a texture
func NewImageTextureFromFile(filename string) (*ImageTexture, error) {
	data, err := loaders.LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(data.Width, data.Height, data.Pixels), nil
}

// unitInterval clamps texture coordinates
var unitInterval = core.NewInterval(0, 1)

// Value samples the image at the given UV coordinates with nearest-neighbor
// filtering. V=0 is the bottom of the image. With no image data it returns
// solid cyan as a debugging aid.
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Height <= 0 {
		return core.NewVec3(0, 1, 1)
	}

	u := unitInterval.Clamp(uv.X)
	v := 1.0 - unitInterval.Clamp(uv.Y)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
