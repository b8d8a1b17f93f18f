package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry holds all loaded datasets and serves lookup queries.
type Registry struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
	dir      string
}

// NewRegistry creates an empty registry over the given export directory.
func NewRegistry(dir string) *Registry {
	return &Registry{
		datasets: make(map[string]*Dataset),
		dir:      dir,
	}
}

// Load scans the export directory and loads every dataset that carries
// a manifest.yaml.
func (r *Registry) Load() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("read export dir %s: %w", r.dir, err)
	}

	loaded := make(map[string]*Dataset)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.dir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
			continue
		}
		d, err := Load(dir)
		if err != nil {
			return fmt.Errorf("load dataset %s: %w", entry.Name(), err)
		}
		loaded[d.Manifest.ID] = d
	}

	r.mu.Lock()
	r.datasets = loaded
	r.mu.Unlock()
	return nil
}

// Reload reloads all datasets from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

// LookupResult is the response for a single wordform lookup.
type LookupResult struct {
	Wordform   string            `json:"wordform"`
	Normalized string            `json:"normalized"`
	DatasetID  string            `json:"dataset_id"`
	Language   string            `json:"language"`
	DataType   string            `json:"data_type"`
	Fields     map[string]string `json:"fields"`
}

// Lookup finds a wordform in the dataset for a language/data-type pair.
func (r *Registry) Lookup(language, dataType, wordform string) (*LookupResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, err := r.find(language, dataType)
	if err != nil {
		return nil, err
	}

	fields, ok := d.Lookup(wordform)
	if !ok {
		return nil, fmt.Errorf("wordform %q not found in %s", wordform, d.Manifest.ID)
	}
	return &LookupResult{
		Wordform:   wordform,
		Normalized: d.NormalizeWordform(wordform),
		DatasetID:  d.Manifest.ID,
		Language:   d.Manifest.Language,
		DataType:   d.Manifest.DataType,
		Fields:     fields,
	}, nil
}

// find must be called with the read lock held.
func (r *Registry) find(language, dataType string) (*Dataset, error) {
	for _, id := range r.sortedIDs() {
		d := r.datasets[id]
		if strings.EqualFold(d.Manifest.Language, language) && strings.EqualFold(d.Manifest.DataType, dataType) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no dataset for %s %s", language, dataType)
}

func (r *Registry) sortedIDs() []string {
	ids := make([]string, 0, len(r.datasets))
	for id := range r.datasets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Info is the public metadata for a loaded dataset.
type Info struct {
	ID        string `json:"id"`
	Language  string `json:"language"`
	DataType  string `json:"data_type"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
	License   string `json:"license"`
	Generated string `json:"generated"`
	Entries   int    `json:"entries"`
}

// ListDatasets returns metadata for all loaded datasets, sorted by ID.
func (r *Registry) ListDatasets() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.datasets))
	for _, id := range r.sortedIDs() {
		d := r.datasets[id]
		infos = append(infos, Info{
			ID:        d.Manifest.ID,
			Language:  d.Manifest.Language,
			DataType:  d.Manifest.DataType,
			Source:    d.Manifest.Source,
			SourceURL: d.Manifest.SourceURL,
			License:   d.Manifest.License,
			Generated: d.Manifest.Generated,
			Entries:   len(d.Entries),
		})
	}
	return infos
}

// DatasetCount returns the number of loaded datasets.
func (r *Registry) DatasetCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.datasets)
}

// TotalEntries returns the total number of entries across all datasets.
func (r *Registry) TotalEntries() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, d := range r.datasets {
		total += len(d.Entries)
	}
	return total
}
