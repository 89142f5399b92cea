package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	m "mutman.dev/pkg/mutman/internal/model"
)

// ReportStore persists session snapshots so separate runs can be
// compared.
type ReportStore interface {
	Save(path m.Path, snapshot m.Snapshot) error
	Load(path m.Path) (m.Snapshot, error)
}

// YAMLReportStore stores snapshots as YAML files.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// Save writes the snapshot to path, replacing any existing file.
func (s *YAMLReportStore) Save(path m.Path, snapshot m.Snapshot) error {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

// Load reads a snapshot previously written by Save.
func (s *YAMLReportStore) Load(path m.Path) (m.Snapshot, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot m.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return m.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	return snapshot, nil
}
