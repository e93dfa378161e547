package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Artifact is the on-disk handoff between a training run and the serving
// process: every category's schema, written once at the end of training.
type Artifact struct {
	CapturedAt time.Time          `json:"captured_at"`
	Schemas    map[string]*Schema `json:"schemas"`
}

// NewArtifact builds an artifact over the given schemas, keyed by category.
func NewArtifact(schemas []*Schema) *Artifact {
	byCategory := make(map[string]*Schema, len(schemas))
	for _, s := range schemas {
		byCategory[s.Category] = s
	}
	return &Artifact{CapturedAt: time.Now().UTC(), Schemas: byCategory}
}

// Get returns the schema for a category.
func (a *Artifact) Get(category string) (*Schema, bool) {
	s, ok := a.Schemas[category]
	return s, ok
}

// Save writes the artifact as JSON, creating parent directories as needed.
func (a *Artifact) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating schema dir: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schema artifact: %w", err)
	}
	return nil
}

// Load reads an artifact written by Save and validates every schema in it.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decoding schema artifact: %w", err)
	}

	for category, s := range artifact.Schemas {
		validated, err := New(s.Category, s.Version, s.Columns, s.Means)
		if err != nil {
			return nil, fmt.Errorf("schema for %s: %w", category, err)
		}
		artifact.Schemas[category] = validated
	}

	return &artifact, nil
}
