// Package dataset loads exported language datasets back into memory
// for lookups, behind the serve command's HTTP and MCP surfaces.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Dataset is one loaded dataset with its manifest and in-memory map of
// wordform to field values (e.g. plural, form).
type Dataset struct {
	Manifest  *Manifest                    `json:"manifest"`
	Entries   map[string]map[string]string `json:"-"`
	normalize Normalizer
}

// Load reads a dataset directory: manifest.yaml plus the data file it
// names. A data.gob sidecar takes priority over the exported file.
func Load(dir string) (*Dataset, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	d := &Dataset{
		Manifest:  manifest,
		Entries:   make(map[string]map[string]string),
		normalize: GetNormalizer(manifest.Format.Normalize),
	}

	gobPath := filepath.Join(dir, "data.gob")
	if _, err := os.Stat(gobPath); err == nil {
		if err := d.loadGob(gobPath); err != nil {
			return nil, fmt.Errorf("dataset %s: %w", manifest.ID, err)
		}
		return d, nil
	}

	dataPath := filepath.Join(dir, manifest.DataFile)
	switch ext := strings.ToLower(filepath.Ext(dataPath)); ext {
	case ".json":
		err = d.loadJSON(dataPath)
	case ".csv", ".tsv":
		err = d.loadDelimited(dataPath, ext)
	default:
		err = fmt.Errorf("unsupported data file %s", manifest.DataFile)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", manifest.ID, err)
	}
	return d, nil
}

func (d *Dataset) loadJSON(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	raw := make(map[string]map[string]string)
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	for wordform, fields := range raw {
		d.Entries[d.normalize(wordform)] = fields
	}
	return nil
}

// loadDelimited reads back a csv or tsv export. The first column is the
// wordform, remaining columns become fields named by the header.
func (d *Dataset) loadDelimited(path, ext string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if ext == ".tsv" {
		r.Comma = '\t'
	}
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if len(record) == 0 || record[0] == "" {
			continue
		}

		fields := make(map[string]string, len(header)-1)
		for i := 1; i < len(header) && i < len(record); i++ {
			fields[header[i]] = record[i]
		}
		d.Entries[d.normalize(record[0])] = fields
	}
	return nil
}

// Lookup finds a wordform in this dataset after normalization.
func (d *Dataset) Lookup(wordform string) (map[string]string, bool) {
	fields, ok := d.Entries[d.normalize(wordform)]
	return fields, ok
}

// NormalizeWordform applies this dataset's normalizer.
func (d *Dataset) NormalizeWordform(wordform string) string {
	return d.normalize(wordform)
}
