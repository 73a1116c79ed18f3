package viewmodel

// Package viewmodel turns a flat candidate collection into the ordered
// position groups rendered by the card grid, and the matching position list
// shown by the navigation bar. Both are derived from one computation so they
// cannot disagree.
