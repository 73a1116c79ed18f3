package avatar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"math"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	xdraw "golang.org/x/image/draw"
)

// MaxImageBytes bounds the size of a photo the resolver is willing to decode.
const MaxImageBytes = 16 << 20

// LoadImage opens and decodes the image at path.
func LoadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("image path is a directory: %s", path)
	}
	if info.Size() > MaxImageBytes {
		return nil, fmt.Errorf("image too large: %d bytes", info.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// CircleImage crops the centre square of src, scales it to diameter and
// clears everything outside the inscribed circle. The edge is anti-aliased.
func CircleImage(src image.Image, diameter int) *image.RGBA {
	if diameter <= 0 {
		diameter = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, centerSquare(src.Bounds()), xdraw.Src, nil)

	out := image.NewRGBA(scaled.Bounds())
	draw.DrawMask(out, out.Bounds(), scaled, image.Point{}, &circleMask{diameter: diameter}, image.Point{}, draw.Over)
	return out
}

// centerSquare returns the largest square centred in r.
func centerSquare(r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	side := min(w, h)
	x0 := r.Min.X + (w-side)/2
	y0 := r.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

// circleMask is an alpha mask that is opaque inside a circle of the given
// diameter anchored at the origin.
type circleMask struct {
	diameter int
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.diameter, m.diameter)
}

func (m *circleMask) At(x, y int) color.Color {
	r := float64(m.diameter) / 2
	dx := float64(x) + 0.5 - r
	dy := float64(y) + 0.5 - r
	d := math.Sqrt(dx*dx+dy*dy) - r + 0.5

	switch {
	case d <= 0:
		return color.Alpha{A: 255}
	case d >= 1:
		return color.Alpha{A: 0}
	default:
		return color.Alpha{A: uint8(255 * (1 - d))}
	}
}
