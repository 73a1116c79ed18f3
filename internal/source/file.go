package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/halalan-ph/candidate-overview/internal/model"
	"github.com/halalan-ph/candidate-overview/internal/platform"
)

// document is the wrapped file layout: `candidates: [...]`.
type document struct {
	Candidates []model.Candidate `yaml:"candidates"`
}

// FileSource reads candidates from a YAML or JSON file. The file holds
// either a bare list of candidates or a mapping with a candidates key.
// Relative image paths are resolved against the file's directory.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the file at path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the backing file
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and decodes the file
func (s *FileSource) Load(ctx context.Context) ([]model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read candidate file: %w", err)
	}

	candidates, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	baseDir := filepath.Dir(s.path)
	for i := range candidates {
		candidates[i].ImageRef = platform.ResolveImageRef(baseDir, candidates[i].ImageRef)
	}
	return candidates, nil
}

// Decode parses a YAML or JSON candidate document. Empty input yields an
// empty collection.
func Decode(data []byte) ([]model.Candidate, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return []model.Candidate{}, nil
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var list []model.Candidate
		if err := node.Decode(&list); err != nil {
			return nil, err
		}
		return nonNil(list), nil
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return nonNil(doc.Candidates), nil
	default:
		return nil, fmt.Errorf("expected a list or a mapping, got %s", kindName(node.Kind))
	}
}

// Encode writes candidates in the wrapped YAML layout.
func Encode(candidates []model.Candidate) ([]byte, error) {
	return yaml.Marshal(document{Candidates: nonNil(candidates)})
}

func nonNil(list []model.Candidate) []model.Candidate {
	if list == nil {
		return []model.Candidate{}
	}
	return list
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
