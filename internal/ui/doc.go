package ui

// Package ui contains the Fyne-based desktop user interface for the candidate
// overview. It renders position sections of candidate cards next to a
// navigation list, keeps hover and selection state, and wires reloads from the
// candidate source. All UI strings are localized via Localization.
