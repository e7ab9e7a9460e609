// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Informasjonsforvaltning/fdk-parser-service/pkg/types"
)

// ExportEntry is one record as written to the export files.
type ExportEntry struct {
	Kind     string    `json:"kind" yaml:"kind"`
	ID       string    `json:"id" yaml:"id"`
	URI      string    `json:"uri,omitempty" yaml:"uri,omitempty"`
	ParsedAt time.Time `json:"parsed_at" yaml:"parsed_at"`
	RunID    string    `json:"run_id" yaml:"run_id"`
	Record   any       `json:"record" yaml:"record"`
}

// ExportYAML writes the records of kind (all kinds when empty) to
// <dir>/export.yaml and returns the path.
func (s *Store) ExportYAML(ctx context.Context, kind types.Kind) (string, error) {
	entries, err := s.exportEntries(ctx, kind)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dir, "export.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the records of kind (all kinds when empty) to
// <dir>/export.json and returns the path.
func (s *Store) ExportJSON(ctx context.Context, kind types.Kind) (string, error) {
	entries, err := s.exportEntries(ctx, kind)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dir, "export.json")
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, kind types.Kind) ([]ExportEntry, error) {
	records, err := s.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(records))
	for i, r := range records {
		// Decode into generic values so the YAML export keeps the JSON
		// field names.
		var body any
		if err := json.Unmarshal(r.Payload, &body); err != nil {
			return nil, fmt.Errorf("decoding %s %s: %w", r.Kind, r.ID, err)
		}
		entries[i] = ExportEntry{
			Kind:     string(r.Kind),
			ID:       r.ID,
			URI:      r.URI,
			ParsedAt: r.ParsedAt,
			RunID:    r.RunID,
			Record:   body,
		}
	}
	return entries, nil
}
