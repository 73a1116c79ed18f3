package viewmodel

import (
	"cmp"
	"slices"

	"github.com/halalan-ph/candidate-overview/internal/model"
)

// BuildOrderedGroups groups candidates by position and orders the result.
//
// Canonical positions come first in configured order, skipping those without
// members, followed by every other position in ascending byte order. Members
// are sorted by name in byte order; equal names fall back to party and image
// ref so the result depends only on the input set. The input is not modified.
func (c Config) BuildOrderedGroups(candidates []model.Candidate) []model.PositionGroup {
	byPosition := make(map[string][]model.Candidate)
	for _, cand := range candidates {
		byPosition[cand.Position] = append(byPosition[cand.Position], cand)
	}

	groups := make([]model.PositionGroup, 0, len(byPosition))
	for _, position := range c.orderPositions(byPosition) {
		members := byPosition[position]
		slices.SortFunc(members, compareCandidates)
		groups = append(groups, model.PositionGroup{Position: position, Members: members})
	}
	return groups
}

// BuildOrderedGroups is shorthand for DefaultConfig().BuildOrderedGroups.
func BuildOrderedGroups(candidates []model.Candidate) []model.PositionGroup {
	return DefaultConfig().BuildOrderedGroups(candidates)
}

// Positions returns the position names of groups in display order. The
// navigation bar must use this rather than ordering positions on its own.
func Positions(groups []model.PositionGroup) []string {
	positions := make([]string, len(groups))
	for i, g := range groups {
		positions[i] = g.Position
	}
	return positions
}

// orderPositions returns the keys of byPosition in display order.
func (c Config) orderPositions(byPosition map[string][]model.Candidate) []string {
	ordered := make([]string, 0, len(byPosition))
	for _, p := range c.order {
		if len(byPosition[p]) > 0 {
			ordered = append(ordered, p)
		}
	}

	var rest []string
	for p := range byPosition {
		if !c.order.Contains(p) {
			rest = append(rest, p)
		}
	}
	slices.Sort(rest)
	return append(ordered, rest...)
}

func compareCandidates(a, b model.Candidate) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Party, b.Party),
		cmp.Compare(a.ImageRef, b.ImageRef),
	)
}
