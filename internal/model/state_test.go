package model

import "testing"

func TestCardID_Stable(t *testing.T) {
	first := CardID("Juan Dela Cruz")
	second := CardID("Juan Dela Cruz")

	if first != second {
		t.Errorf("CardID should be stable, got %s and %s", first, second)
	}
	if first == CardID("Maria Cruz") {
		t.Error("Different names should yield different card ids")
	}
	if len(first) != 36 {
		t.Errorf("Expected canonical UUID string, got %q", first)
	}
}

func TestViewState_Transitions(t *testing.T) {
	id := CardID("Ana Reyes")

	var state ViewState
	if state.IsHovered(id) || state.IsSelected(id) {
		t.Fatal("Zero state should have nothing hovered or selected")
	}

	hovered := state.WithHovered(id)
	if !hovered.IsHovered(id) {
		t.Error("Expected card to be hovered")
	}
	if state.IsHovered(id) {
		t.Error("WithHovered must not modify the receiver")
	}

	selected := hovered.WithSelected(id).WithHovered("")
	if !selected.IsSelected(id) {
		t.Error("Expected card to stay selected after hover ends")
	}
	if selected.IsHovered(id) {
		t.Error("Expected hover to be cleared")
	}

	nav := selected.WithPosition("Senator")
	if nav.SelectedPosition != "Senator" {
		t.Errorf("SelectedPosition = %q, expected Senator", nav.SelectedPosition)
	}
}

func TestViewState_EmptyIDNeverMatches(t *testing.T) {
	state := ViewState{}
	if state.IsHovered("") || state.IsSelected("") {
		t.Error("Empty id must never count as hovered or selected")
	}
}
