package avatar

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/halalan-ph/candidate-overview/internal/model"
)

func TestResolve_Synthetic(t *testing.T) {
	r := NewResolver(WithLogger(zaptest.NewLogger(t)))

	id := r.Resolve("Juan Dela Cruz", "")
	assert.Equal(t, "Juan Dela Cruz", id.CandidateName)
	assert.Equal(t, "JC", id.Initials)
	assert.Equal(t, ColorFromName("Juan Dela Cruz"), id.Color)
	assert.False(t, id.HasImage())
}

func TestResolve_ImageFallback(t *testing.T) {
	r := NewResolver(WithLogger(zaptest.NewLogger(t)))
	fallback := NewResolver().Resolve("Ana Reyes", "")

	id := r.Resolve("Ana Reyes", "/nonexistent/path.png")
	assert.Nil(t, id.Image)
	assert.Equal(t, fallback.Initials, id.Initials)
	assert.Equal(t, fallback.Color, id.Color)
}

func TestResolve_LoadsImage(t *testing.T) {
	path := writePNG(t, t.TempDir(), 10, 10, color.RGBA{B: 255, A: 255})
	r := NewResolver()

	id := r.Resolve("Maria Cruz", path)
	require.True(t, id.HasImage())
	assert.Equal(t, 10, id.Image.Bounds().Dx())
	// Initials and colour are filled in even when a photo exists
	assert.Equal(t, "MC", id.Initials)
}

func TestResolve_BlankRefSkipsLoader(t *testing.T) {
	calls := 0
	r := NewResolver(WithImageLoader(func(string) (image.Image, error) {
		calls++
		return nil, errors.New("should not be called")
	}))

	r.Resolve("Cher", "   ")
	assert.Equal(t, 0, calls)
}

func TestResolve_CachedByName(t *testing.T) {
	calls := 0
	r := NewResolver(WithImageLoader(func(string) (image.Image, error) {
		calls++
		return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
	}))

	first := r.Resolve("Cher", "cher.png")
	second := r.Resolve("Cher", "cher.png")
	assert.Equal(t, 1, calls)
	assert.Same(t, first.Image, second.Image)
	assert.Equal(t, 1, r.Len())
}

func TestResolver_Invalidate(t *testing.T) {
	calls := 0
	r := NewResolver(WithImageLoader(func(string) (image.Image, error) {
		calls++
		return nil, errors.New("unreadable")
	}))

	r.Resolve("Cher", "cher.png")
	r.Invalidate()
	assert.Equal(t, 0, r.Len())

	r.Resolve("Cher", "cher.png")
	assert.Equal(t, 2, calls)
}

func TestResolver_Circle(t *testing.T) {
	path := writePNG(t, t.TempDir(), 50, 50, color.RGBA{R: 255, A: 255})
	r := NewResolver()

	c := r.Circle("Maria Cruz", path, 24)
	require.NotNil(t, c)
	assert.Equal(t, 24, c.Bounds().Dx())
	assert.Same(t, c, r.Circle("Maria Cruz", path, 24))

	assert.Nil(t, r.Circle("No Photo", "", 24))
	assert.Nil(t, r.Circle("Bad Photo", filepath.Join(t.TempDir(), "gone.png"), 24))
}

func TestResolveCandidate(t *testing.T) {
	r := NewResolver()
	id := r.ResolveCandidate(model.Candidate{Name: "Cher", Position: "Senator"})
	assert.Equal(t, "CH", id.Initials)
}
