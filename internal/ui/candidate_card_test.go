package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/halalan-ph/candidate-overview/internal/avatar"
	"github.com/halalan-ph/candidate-overview/internal/model"
)

func TestCandidateCard_Callbacks(t *testing.T) {
	test.NewApp()

	candidate := model.Candidate{Name: "Maria Santos", Party: "Lakas", Position: model.PositionSenator}
	card := NewCandidateCard(candidate, avatar.NewResolver())
	assert.Equal(t, model.CardID("Maria Santos"), card.ID())

	var hovered []bool
	var tapped model.Candidate
	card.SetCallbacks(
		func(id string, inside bool) {
			assert.Equal(t, card.ID(), id)
			hovered = append(hovered, inside)
		},
		func(id string, c model.Candidate) {
			assert.Equal(t, card.ID(), id)
			tapped = c
		},
	)

	card.MouseIn(nil)
	card.MouseOut()
	assert.Equal(t, []bool{true, false}, hovered)

	test.Tap(card)
	assert.Equal(t, candidate, tapped)
}

func TestCandidateCard_NoCallbacks(t *testing.T) {
	test.NewApp()

	card := NewCandidateCard(model.Candidate{Name: "Ana Reyes"}, avatar.NewResolver())
	assert.NotPanics(t, func() {
		card.MouseIn(nil)
		card.MouseOut()
		test.Tap(card)
	})
}

func TestCandidateCard_StateColors(t *testing.T) {
	test.NewApp()

	card := NewCandidateCard(model.Candidate{Name: "Ana Reyes"}, avatar.NewResolver())
	w := test.NewWindow(card)
	defer w.Close()

	assert.Equal(t, ColorCardBackground, card.backgroundColor())

	card.SetState(model.ViewState{HoveredID: card.ID()})
	assert.Equal(t, ColorCardHover, card.backgroundColor())

	// Selection wins over hover
	card.SetState(model.ViewState{HoveredID: card.ID(), SelectedID: card.ID()})
	assert.Equal(t, ColorCardSelected, card.backgroundColor())

	card.SetState(model.ViewState{HoveredID: model.CardID("someone else")})
	assert.Equal(t, ColorCardBackground, card.backgroundColor())
}

func TestCandidateCard_MinSizeFollowsScale(t *testing.T) {
	test.NewApp()

	card := NewCandidateCard(model.Candidate{Name: "Ana Reyes"}, avatar.NewResolver())
	assert.Equal(t, CardWidth, card.MinSize().Width)
	assert.Equal(t, CardHeight, card.MinSize().Height)

	card.SetScale(1.5)
	assert.Equal(t, CardWidth*1.5, card.MinSize().Width)
	assert.Equal(t, CardHeight*1.5, card.MinSize().Height)
}

func TestCandidateCard_ResolvesThroughCache(t *testing.T) {
	test.NewApp()

	resolver := avatar.NewResolver()
	card := NewCandidateCard(model.Candidate{Name: "Ana Reyes"}, resolver)
	w := test.NewWindow(card)
	defer w.Close()

	test.WidgetRenderer(card)
	assert.Equal(t, 1, resolver.Len())
}

func TestCandidateCard_TouchFeedback(t *testing.T) {
	test.NewApp()

	card := NewCandidateCard(model.Candidate{Name: "Ana Reyes"}, avatar.NewResolver())
	var hovered []bool
	card.SetCallbacks(func(_ string, inside bool) { hovered = append(hovered, inside) }, nil)

	card.TouchDown(nil)
	card.TouchUp(nil)
	card.TouchDown(nil)
	card.TouchCancel(nil)
	assert.Equal(t, []bool{true, false, true, false}, hovered)
}
