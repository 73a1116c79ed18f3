package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/halalan-ph/candidate-overview/internal/avatar"
	"github.com/halalan-ph/candidate-overview/internal/model"
)

func TestAvatarView_Photo(t *testing.T) {
	test.NewApp()

	loads := 0
	resolver := avatar.NewResolver(avatar.WithImageLoader(func(string) (image.Image, error) {
		loads++
		return image.NewRGBA(image.Rect(0, 0, 8, 8)), nil
	}))

	v := newAvatarView(resolver, model.Candidate{Name: "Ana Reyes", ImageRef: "ana.png"}, AvatarDiameter)
	assert.True(t, v.photo.Visible())
	assert.False(t, v.initials.Visible())
	assert.Equal(t, 1, loads)
}

func TestAvatarView_Initials(t *testing.T) {
	test.NewApp()

	loads := 0
	resolver := avatar.NewResolver(avatar.WithImageLoader(func(string) (image.Image, error) {
		loads++
		return nil, nil
	}))

	v := newAvatarView(resolver, model.Candidate{Name: "Ana Reyes", ImageRef: "  "}, AvatarDiameter)
	assert.False(t, v.photo.Visible())
	assert.True(t, v.initials.Visible())
	assert.Equal(t, "AR", v.initials.Text)
	assert.Equal(t, avatar.ColorFromName("Ana Reyes"), v.fill.FillColor)
	assert.Zero(t, loads)
}
