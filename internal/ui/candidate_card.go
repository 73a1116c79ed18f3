package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/halalan-ph/candidate-overview/internal/avatar"
	"github.com/halalan-ph/candidate-overview/internal/model"
)

// CandidateCard shows one candidate: avatar, name and party on a rounded
// card. Hover and selection come in through SetState; pointer events are
// reported through the callbacks and never change the card directly.
type CandidateCard struct {
	widget.BaseWidget

	candidate model.Candidate
	id        string
	resolver  *avatar.Resolver
	state     model.ViewState
	scale     float32

	// Callbacks
	onHover func(id string, inside bool)
	onTap   func(id string, candidate model.Candidate)
}

var (
	_ desktop.Hoverable = (*CandidateCard)(nil)
	_ fyne.Tappable     = (*CandidateCard)(nil)
)

// NewCandidateCard creates a card for candidate
func NewCandidateCard(candidate model.Candidate, resolver *avatar.Resolver) *CandidateCard {
	c := &CandidateCard{
		candidate: candidate,
		id:        model.CardID(candidate.Name),
		resolver:  resolver,
		scale:     1,
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetCallbacks sets the pointer callbacks
func (c *CandidateCard) SetCallbacks(onHover func(id string, inside bool), onTap func(id string, candidate model.Candidate)) {
	c.onHover = onHover
	c.onTap = onTap
}

// ID returns the card id used in ViewState
func (c *CandidateCard) ID() string {
	return c.id
}

// Candidate returns the candidate shown on the card
func (c *CandidateCard) Candidate() model.Candidate {
	return c.candidate
}

// SetState applies the view state and refreshes when it affects this card
func (c *CandidateCard) SetState(state model.ViewState) {
	changed := c.state.IsHovered(c.id) != state.IsHovered(c.id) ||
		c.state.IsSelected(c.id) != state.IsSelected(c.id)
	c.state = state
	if changed {
		c.Refresh()
	}
}

// SetScale resizes the card contents for a new scale factor
func (c *CandidateCard) SetScale(scale float32) {
	if scale <= 0 || scale == c.scale {
		return
	}
	c.scale = scale
	c.Refresh()
}

// MouseIn is called when a desktop pointer enters the card
func (c *CandidateCard) MouseIn(*desktop.MouseEvent) {
	if c.onHover != nil {
		c.onHover(c.id, true)
	}
}

// MouseMoved is called when a desktop pointer hovers over the card
func (c *CandidateCard) MouseMoved(*desktop.MouseEvent) {}

// MouseOut is called when a desktop pointer leaves the card
func (c *CandidateCard) MouseOut() {
	if c.onHover != nil {
		c.onHover(c.id, false)
	}
}

// TouchDown highlights the card while a finger rests on it
func (c *CandidateCard) TouchDown(*mobile.TouchEvent) {
	c.MouseIn(nil)
}

// TouchUp clears the press highlight; the tap itself arrives through Tapped
func (c *CandidateCard) TouchUp(*mobile.TouchEvent) {
	c.MouseOut()
}

// TouchCancel clears the press highlight
func (c *CandidateCard) TouchCancel(*mobile.TouchEvent) {
	c.MouseOut()
}

// Tapped is called when the card is clicked
func (c *CandidateCard) Tapped(*fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap(c.id, c.candidate)
	}
}

// backgroundColor returns the fill for the current state
func (c *CandidateCard) backgroundColor() color.Color {
	switch {
	case c.state.IsSelected(c.id):
		return ColorCardSelected
	case c.state.IsHovered(c.id):
		return ColorCardHover
	default:
		return ColorCardBackground
	}
}

// CreateRenderer creates the widget renderer
func (c *CandidateCard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(ColorCardBackground)
	bg.StrokeColor = ColorCardBorder

	name := widget.NewLabel(c.candidate.DisplayName())
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Alignment = fyne.TextAlignCenter
	name.Truncation = fyne.TextTruncateEllipsis

	party := canvas.NewText(c.candidate.DisplayParty(), ColorPartyText)
	party.Alignment = fyne.TextAlignCenter

	r := &candidateCardRenderer{
		card:       c,
		background: bg,
		avatar:     newAvatarView(c.resolver, c.candidate, AvatarDiameter*c.scale),
		name:       name,
		party:      party,
		lastScale:  c.scale,
	}
	r.applyStyle()
	return r
}

// candidateCardRenderer renders the candidate card widget
type candidateCardRenderer struct {
	card       *CandidateCard
	background *canvas.Rectangle
	avatar     *avatarView
	name       *widget.Label
	party      *canvas.Text
	lastScale  float32
}

// Layout arranges the components top to bottom, centred
func (r *candidateCardRenderer) Layout(size fyne.Size) {
	s := r.card.scale
	pad := CardGap * s

	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	d := AvatarDiameter * s
	avatarObj := r.avatar.Object()
	avatarObj.Resize(fyne.NewSize(d, d))
	avatarObj.Move(fyne.NewPos((size.Width-d)/2, pad))

	nameH := r.name.MinSize().Height
	r.name.Resize(fyne.NewSize(size.Width-pad, nameH))
	r.name.Move(fyne.NewPos(pad/2, pad+d+pad/2))

	partyH := r.party.MinSize().Height
	r.party.Resize(fyne.NewSize(size.Width-pad, partyH))
	r.party.Move(fyne.NewPos(pad/2, pad+d+pad/2+nameH))
}

// MinSize returns the card cell size at the current scale
func (r *candidateCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CardWidth*r.card.scale, CardHeight*r.card.scale)
}

// Refresh applies state and scale changes
func (r *candidateCardRenderer) Refresh() {
	if r.lastScale != r.card.scale {
		r.lastScale = r.card.scale
		r.avatar.update(r.card.resolver, r.card.candidate, AvatarDiameter*r.card.scale)
	}
	r.applyStyle()
	r.Layout(r.card.Size())
	canvas.Refresh(r.card)
}

// Objects returns the canvas objects
func (r *candidateCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.avatar.Object(), r.name, r.party}
}

// Destroy cleans up the renderer
func (r *candidateCardRenderer) Destroy() {}

func (r *candidateCardRenderer) applyStyle() {
	s := r.card.scale
	r.background.FillColor = r.card.backgroundColor()
	r.background.CornerRadius = CardCornerRadius * s
	r.background.StrokeWidth = CardBorderWidth
	if r.card.state.IsSelected(r.card.id) {
		r.background.StrokeColor = ColorAccent
		r.background.StrokeWidth = CardBorderWidth * 2
	} else {
		r.background.StrokeColor = ColorCardBorder
	}
	r.party.TextSize = PartyTextSize * s

	r.background.Refresh()
	r.party.Refresh()
}
