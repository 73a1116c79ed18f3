package model

import "testing"

func TestCandidate_HasImage(t *testing.T) {
	tests := []struct {
		ref      string
		expected bool
	}{
		{"", false},
		{"   ", false},
		{"photos/juan.png", true},
	}

	for _, test := range tests {
		c := Candidate{Name: "Juan", ImageRef: test.ref}
		if got := c.HasImage(); got != test.expected {
			t.Errorf("Candidate{ImageRef: %q}.HasImage() = %v, expected %v", test.ref, got, test.expected)
		}
	}
}

func TestCandidate_DisplayName(t *testing.T) {
	c := Candidate{Name: "  Maria\tCruz\n"}
	if got := c.DisplayName(); got != "Maria Cruz" {
		t.Errorf("DisplayName() = %q, expected %q", got, "Maria Cruz")
	}
}

func TestCandidate_DisplayParty(t *testing.T) {
	tests := []struct {
		party    string
		expected string
	}{
		{"", PartyPlaceholder},
		{"Independent", "Independent"},
		{" Liberal\n", "Liberal"},
	}

	for _, test := range tests {
		c := Candidate{Party: test.party}
		if got := c.DisplayParty(); got != test.expected {
			t.Errorf("DisplayParty() with party=%q = %q, expected %q", test.party, got, test.expected)
		}
	}
}

func TestDefaultPositionOrder(t *testing.T) {
	order := DefaultPositionOrder()
	expected := []string{"President", "Vice President", "Senator", "Governor", "Vice Governor", "Partylist Representative"}

	if len(order) != len(expected) {
		t.Fatalf("Expected %d positions, got %d", len(expected), len(order))
	}
	for i, p := range expected {
		if order[i] != p {
			t.Errorf("Position %d: expected %s, got %s", i, p, order[i])
		}
	}

	// Callers get their own copy
	order[0] = "Mayor"
	if DefaultPositionOrder()[0] != PositionPresident {
		t.Error("Mutating a returned order must not affect later calls")
	}
}

func TestPositionOrder_Index(t *testing.T) {
	order := DefaultPositionOrder()

	if idx := order.Index("Senator"); idx != 2 {
		t.Errorf("Index(Senator) = %d, expected 2", idx)
	}
	if idx := order.Index("senator"); idx != -1 {
		t.Errorf("Index(senator) = %d, expected -1 (exact match only)", idx)
	}
	if order.Contains("Mayor") {
		t.Error("Mayor should not be a canonical position")
	}
}

func TestPositionGroup_Len(t *testing.T) {
	g := PositionGroup{Position: "Senator", Members: []Candidate{{Name: "A"}, {Name: "B"}}}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", g.Len())
	}
}
