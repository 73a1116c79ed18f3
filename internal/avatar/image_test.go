package avatar

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG writes a solid w×h PNG to dir and returns its path.
func writePNG(t *testing.T, dir string, w, h int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadImage(t *testing.T) {
	path := writePNG(t, t.TempDir(), 40, 20, color.RGBA{R: 200, A: 255})

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestLoadImage_Failures(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	_, err = LoadImage(dir)
	assert.Error(t, err)

	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an image"), 0o644))
	_, err = LoadImage(corrupt)
	assert.Error(t, err)
}

func TestCircleImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 60, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 60; x++ {
			src.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}

	out := CircleImage(src, 32)
	assert.Equal(t, image.Rect(0, 0, 32, 32), out.Bounds())

	// Centre is opaque, corners are cleared
	_, _, _, a := out.At(16, 16).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = out.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), a)
	_, _, _, a = out.At(31, 31).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestCircleImage_NonPositiveDiameter(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	out := CircleImage(src, 0)
	assert.Equal(t, 1, out.Bounds().Dx())
}

func TestCenterSquare(t *testing.T) {
	assert.Equal(t, image.Rect(15, 0, 45, 30), centerSquare(image.Rect(0, 0, 60, 30)))
	assert.Equal(t, image.Rect(0, 5, 10, 15), centerSquare(image.Rect(0, 0, 10, 20)))
}
