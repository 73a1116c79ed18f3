package model

// Package model defines the data structures shared by the overview screen:
// candidates as delivered by a source, position groups derived from them,
// avatar identities and the explicit hover/selection state of the UI.
