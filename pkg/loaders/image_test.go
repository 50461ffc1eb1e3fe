package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texture.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

func TestLoadImage_DecodesPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	data, err := LoadImage(writePNG(t, img))
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if data.Width != 2 || data.Height != 1 {
		t.Fatalf("Expected 2x1 image, got %dx%d", data.Width, data.Height)
	}
	if math.Abs(data.Pixels[0].X-1) > 1e-9 || data.Pixels[0].Y != 0 {
		t.Errorf("Expected red first pixel, got %v", data.Pixels[0])
	}
	if math.Abs(data.Pixels[1].Y-1) > 1e-9 || data.Pixels[1].X != 0 {
		t.Errorf("Expected green second pixel, got %v", data.Pixels[1])
	}
}

func TestLoadImage_MissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadImage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	if _, err := LoadImage(path); err == nil {
		t.Error("Expected error for corrupt image data")
	}
}
