package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/halalan-ph/candidate-overview/internal/avatar"
	"github.com/halalan-ph/candidate-overview/internal/model"
)

// avatarView draws a candidate avatar: the circular photo when one is
// available, otherwise a filled circle with the initials centred on it.
type avatarView struct {
	root     *fyne.Container
	fill     *canvas.Circle
	border   *canvas.Circle
	photo    *canvas.Image
	initials *canvas.Text
}

// newAvatarView builds the avatar for candidate at the given diameter.
// Identities are always obtained through the resolver so its cache is used.
func newAvatarView(resolver *avatar.Resolver, candidate model.Candidate, diameter float32) *avatarView {
	v := &avatarView{}

	v.fill = canvas.NewCircle(Transparent)
	v.border = canvas.NewCircle(Transparent)
	v.border.StrokeColor = ColorAvatarBorder
	v.border.StrokeWidth = AvatarBorderWidth

	v.initials = canvas.NewText("", ColorInitials)
	v.initials.TextStyle = fyne.TextStyle{Bold: true}
	v.initials.Alignment = fyne.TextAlignCenter

	v.photo = canvas.NewImageFromImage(nil)
	v.photo.FillMode = canvas.ImageFillContain
	v.photo.ScaleMode = canvas.ImageScaleSmooth

	v.root = container.NewStack(v.fill, v.photo, container.NewCenter(v.initials), v.border)
	v.update(resolver, candidate, diameter)
	return v
}

// update re-resolves the identity and resizes the drawing for diameter
func (v *avatarView) update(resolver *avatar.Resolver, candidate model.Candidate, diameter float32) {
	identity := resolver.ResolveCandidate(candidate)
	scale := diameter / AvatarDiameter

	var circle *image.RGBA
	if candidate.HasImage() && identity.HasImage() {
		circle = resolver.Circle(candidate.Name, candidate.ImageRef, int(diameter))
	}

	if circle != nil {
		v.photo.Image = circle
		v.photo.Show()
		v.fill.FillColor = Transparent
		v.initials.Hide()
	} else {
		v.photo.Image = nil
		v.photo.Hide()
		v.fill.FillColor = identity.Color
		v.initials.Text = identity.Initials
		v.initials.TextSize = InitialsTextSize * scale
		v.initials.Show()
	}

	v.border.StrokeWidth = AvatarBorderWidth * scale
	v.photo.SetMinSize(fyne.NewSize(diameter, diameter))
	v.root.Refresh()
}

// Object returns the canvas object to place in a layout
func (v *avatarView) Object() fyne.CanvasObject {
	return v.root
}
