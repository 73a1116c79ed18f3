package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/halalan-ph/candidate-overview/internal/model"
)

// ErrUnsupportedFormat is returned by Open for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported candidate source format")

// Source supplies the full current candidate collection.
type Source interface {
	// Load reads every candidate. Implementations must not return a partial
	// collection together with a nil error.
	Load(ctx context.Context) ([]model.Candidate, error)
	// Path returns the file backing the source, for watching and display.
	Path() string
}

// Supported file extensions
const (
	ExtYAML    = ".yaml"
	ExtYML     = ".yml"
	ExtJSON    = ".json"
	ExtSQLite  = ".sqlite"
	ExtSQLite3 = ".sqlite3"
	ExtDB      = ".db"
)

// Open picks a source implementation from the extension of path.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML, ExtJSON:
		return NewFileSource(path), nil
	case ExtSQLite, ExtSQLite3, ExtDB:
		return NewSQLiteSource(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Static is a fixed in-memory source.
type Static []model.Candidate

// Load returns a copy of the static collection
func (s Static) Load(ctx context.Context) ([]model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Candidate, len(s))
	copy(out, s)
	return out, nil
}

// Path returns an empty string; static sources are not backed by a file
func (s Static) Path() string {
	return ""
}
