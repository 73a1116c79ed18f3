package model

import (
	"github.com/google/uuid"
)

// cardNamespace scopes card ids so they never collide with other name-based UUIDs.
var cardNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("candidate-overview/card"))

// CardID returns a stable identifier for the card of the named candidate.
// The same name always yields the same id, across runs.
func CardID(name string) string {
	return uuid.NewSHA1(cardNamespace, []byte(name)).String()
}

// ViewState is the hover and selection state of the overview screen.
// It is owned by the presentation layer and handed to widgets when they render.
type ViewState struct {
	HoveredID        string // card id under the pointer, empty if none
	SelectedID       string // card id last tapped, empty if none
	SelectedPosition string // position chosen in the navigation, empty if none
}

// IsHovered returns true if the card with id is under the pointer
func (s ViewState) IsHovered(id string) bool {
	return id != "" && s.HoveredID == id
}

// IsSelected returns true if the card with id was the last one tapped
func (s ViewState) IsSelected(id string) bool {
	return id != "" && s.SelectedID == id
}

// WithHovered returns a copy of the state with the hovered card replaced
func (s ViewState) WithHovered(id string) ViewState {
	s.HoveredID = id
	return s
}

// WithSelected returns a copy of the state with the selected card replaced
func (s ViewState) WithSelected(id string) ViewState {
	s.SelectedID = id
	return s
}

// WithPosition returns a copy of the state with the navigation selection replaced
func (s ViewState) WithPosition(position string) ViewState {
	s.SelectedPosition = position
	return s
}
