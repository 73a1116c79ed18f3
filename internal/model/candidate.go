package model

import (
	"image"
	"image/color"
	"strings"
)

// Canonical position names in their preferred display order.
const (
	PositionPresident         = "President"
	PositionVicePresident     = "Vice President"
	PositionSenator           = "Senator"
	PositionGovernor          = "Governor"
	PositionViceGovernor      = "Vice Governor"
	PositionPartylistDelegate = "Partylist Representative"
)

// PartyPlaceholder is shown in place of an unknown party.
const PartyPlaceholder = "—"

// Candidate is a single entry delivered by a candidate source.
// Candidates are identified by Name within a rendered set.
type Candidate struct {
	Name     string `json:"name" yaml:"name"`
	Party    string `json:"party" yaml:"party"`
	Position string `json:"position" yaml:"position"`
	ImageRef string `json:"image,omitempty" yaml:"image,omitempty"` // path to a photo, empty if none
}

// HasImage reports whether the candidate carries a non-blank image reference.
func (c Candidate) HasImage() bool {
	return strings.TrimSpace(c.ImageRef) != ""
}

// DisplayName returns the name with line breaks and tabs collapsed to spaces
func (c Candidate) DisplayName() string {
	return cleanText(c.Name)
}

// DisplayParty returns the party label, or a dash when the party is unknown
func (c Candidate) DisplayParty() string {
	party := cleanText(c.Party)
	if party == "" {
		return PartyPlaceholder
	}
	return party
}

// PositionGroup is the ordered set of candidates running for one position.
type PositionGroup struct {
	Position string      `json:"position"`
	Members  []Candidate `json:"members"`
}

// Len returns the number of members in the group
func (g PositionGroup) Len() int {
	return len(g.Members)
}

// PositionOrder is an ordered list of canonical position names.
type PositionOrder []string

// DefaultPositionOrder returns a fresh copy of the canonical position order.
func DefaultPositionOrder() PositionOrder {
	return PositionOrder{
		PositionPresident,
		PositionVicePresident,
		PositionSenator,
		PositionGovernor,
		PositionViceGovernor,
		PositionPartylistDelegate,
	}
}

// Index returns the rank of position in the order, or -1 if it is not listed.
func (o PositionOrder) Index(position string) int {
	for i, p := range o {
		if p == position {
			return i
		}
	}
	return -1
}

// Contains reports whether position is one of the canonical positions.
func (o PositionOrder) Contains(position string) bool {
	return o.Index(position) >= 0
}

// AvatarIdentity is the resolved visual representation of a candidate.
// Image is nil when no usable photo exists; Color and Initials are always set.
type AvatarIdentity struct {
	CandidateName string
	Image         image.Image
	Color         color.RGBA
	Initials      string
}

// HasImage reports whether a decoded photo is available
func (a AvatarIdentity) HasImage() bool {
	return a.Image != nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
