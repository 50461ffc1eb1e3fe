package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/cg711/raytracer/pkg/core"
)

// intensityInterval clips channel values just below 1 so the byte value
// never reaches 256
var intensityInterval = core.NewInterval(0, 0.999)

// linearToGamma applies the gamma-2 encoding used for output
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// WritePPM writes the framebuffer as an ASCII PPM (P3) image in row-major
// order from the top-left
func WritePPM(w io.Writer, framebuffer []core.Vec3, width, height int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for _, pixel := range framebuffer {
		r := int(256 * intensityInterval.Clamp(linearToGamma(pixel.X)))
		g := int(256 * intensityInterval.Clamp(linearToGamma(pixel.Y)))
		b := int(256 * intensityInterval.Clamp(linearToGamma(pixel.Z)))

		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}

	return bw.Flush()
}
