package viewmodel

import (
	"sync"

	"github.com/halalan-ph/candidate-overview/internal/model"
)

// Overview is an immutable snapshot of the grouped candidate list.
type Overview struct {
	Groups    []model.PositionGroup
	Positions []string
	Total     int
}

// Group returns the group for position and whether it exists in the snapshot
func (o Overview) Group(position string) (model.PositionGroup, bool) {
	for _, g := range o.Groups {
		if g.Position == position {
			return g, true
		}
	}
	return model.PositionGroup{}, false
}

// IsEmpty returns true if the snapshot has no candidates
func (o Overview) IsEmpty() bool {
	return o.Total == 0
}

// ViewModel holds the current overview and replaces it wholesale on reload.
type ViewModel struct {
	cfg Config

	mu      sync.RWMutex
	current Overview
}

// New creates a view model with an empty overview
func New(cfg Config) *ViewModel {
	return &ViewModel{
		cfg:     cfg,
		current: cfg.Snapshot(nil),
	}
}

// Config returns the configuration the view model was built with
func (vm *ViewModel) Config() Config {
	return vm.cfg
}

// Snapshot builds an overview for candidates without touching any view model.
func (c Config) Snapshot(candidates []model.Candidate) Overview {
	groups := c.BuildOrderedGroups(candidates)
	return Overview{
		Groups:    groups,
		Positions: Positions(groups),
		Total:     len(candidates),
	}
}

// Reload computes a new overview for candidates and swaps it in. Readers see
// either the old or the new overview, never a partial one.
func (vm *ViewModel) Reload(candidates []model.Candidate) Overview {
	next := vm.cfg.Snapshot(candidates)

	vm.mu.Lock()
	vm.current = next
	vm.mu.Unlock()

	return next
}

// Current returns the overview currently on display
func (vm *ViewModel) Current() Overview {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.current
}
