package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/halalan-ph/candidate-overview/internal/avatar"
	"github.com/halalan-ph/candidate-overview/internal/model"
)

// PositionSection renders one position group: a heading with the member
// count followed by a wrapping grid of candidate cards.
type PositionSection struct {
	group model.PositionGroup

	heading *canvas.Text
	count   *canvas.Text
	grid    *fyne.Container
	layout  *cardGridLayout
	cards   []*CandidateCard

	container *fyne.Container
}

// NewPositionSection creates the section for group
func NewPositionSection(group model.PositionGroup, resolver *avatar.Resolver, scale float32) *PositionSection {
	ps := &PositionSection{group: group}

	ps.heading = canvas.NewText(group.Position, theme.Color(theme.ColorNameForeground))
	ps.heading.TextStyle = fyne.TextStyle{Bold: true}
	ps.count = canvas.NewText(fmt.Sprintf(CountLabelFormat, group.Len()), ColorPartyText)

	ps.layout = newCardGridLayout(fyne.NewSize(CardWidth, CardHeight), CardGap)
	ps.cards = make([]*CandidateCard, 0, group.Len())
	objects := make([]fyne.CanvasObject, 0, group.Len())
	for _, member := range group.Members {
		card := NewCandidateCard(member, resolver)
		ps.cards = append(ps.cards, card)
		objects = append(objects, card)
	}
	ps.grid = container.New(ps.layout, objects...)

	header := container.NewHBox(ps.heading, ps.count)
	ps.container = container.NewVBox(header, ps.grid)
	ps.SetScale(scale)
	return ps
}

// Position returns the position this section shows
func (ps *PositionSection) Position() string {
	return ps.group.Position
}

// Container returns the canvas object for the section
func (ps *PositionSection) Container() *fyne.Container {
	return ps.container
}

// Cards returns the cards in display order
func (ps *PositionSection) Cards() []*CandidateCard {
	return ps.cards
}

// SetCallbacks wires pointer callbacks on every card
func (ps *PositionSection) SetCallbacks(onHover func(id string, inside bool), onTap func(id string, candidate model.Candidate)) {
	for _, card := range ps.cards {
		card.SetCallbacks(onHover, onTap)
	}
}

// SetState passes the view state down to every card
func (ps *PositionSection) SetState(state model.ViewState) {
	for _, card := range ps.cards {
		card.SetState(state)
	}
	if state.SelectedPosition == ps.group.Position {
		ps.heading.Color = ColorAccent
	} else {
		ps.heading.Color = theme.Color(theme.ColorNameForeground)
	}
	ps.heading.Refresh()
}

// SetScale resizes the heading, grid and cards
func (ps *PositionSection) SetScale(scale float32) {
	ps.heading.TextSize = SectionHeadingSize * scale
	ps.count.TextSize = PartyTextSize * scale
	ps.layout.SetScale(scale)
	for _, card := range ps.cards {
		card.SetScale(scale)
	}
	ps.heading.Refresh()
	ps.count.Refresh()
	ps.grid.Refresh()
}
