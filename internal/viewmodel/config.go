package viewmodel

import (
	"github.com/halalan-ph/candidate-overview/internal/model"
)

// Config is the immutable configuration shared by the view model and the
// navigation bar. Build it with NewConfig or DefaultConfig.
type Config struct {
	order model.PositionOrder
}

// NewConfig creates a configuration with the given canonical position order.
// The order is copied; duplicates keep their first occurrence.
func NewConfig(order model.PositionOrder) Config {
	seen := make(map[string]bool, len(order))
	copied := make(model.PositionOrder, 0, len(order))
	for _, p := range order {
		if seen[p] {
			continue
		}
		seen[p] = true
		copied = append(copied, p)
	}
	return Config{order: copied}
}

// DefaultConfig returns the configuration with the standard ballot order
func DefaultConfig() Config {
	return NewConfig(model.DefaultPositionOrder())
}

// PositionOrder returns a copy of the canonical position order
func (c Config) PositionOrder() model.PositionOrder {
	out := make(model.PositionOrder, len(c.order))
	copy(out, c.order)
	return out
}
