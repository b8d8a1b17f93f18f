package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes one exported dataset: where it came from and how
// to read it back.
type Manifest struct {
	ID        string     `yaml:"id" json:"id"`
	Language  string     `yaml:"language" json:"language"`
	DataType  string     `yaml:"data_type" json:"data_type"`
	Source    string     `yaml:"source" json:"source"`
	SourceURL string     `yaml:"source_url,omitempty" json:"source_url,omitempty"`
	License   string     `yaml:"license" json:"license"`
	Generated string     `yaml:"generated" json:"generated"`
	DataFile  string     `yaml:"data_file" json:"data_file"`
	Entries   int        `yaml:"entries" json:"entries"`
	Format    FormatSpec `yaml:"format" json:"-"`
}

// FormatSpec describes how the data file is looked up.
type FormatSpec struct {
	Normalize string `yaml:"normalize,omitempty"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	if m.DataFile == "" {
		return nil, fmt.Errorf("manifest %s: missing data_file", path)
	}
	return &m, nil
}

// WriteManifest writes a Manifest as YAML to path.
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
