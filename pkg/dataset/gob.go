package dataset

import (
	"encoding/gob"
	"fmt"
	"os"
)

// loadGob deserializes entries from a gob-encoded sidecar into d.Entries.
func (d *Dataset) loadGob(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	raw := make(map[string]map[string]string)
	if err := gob.NewDecoder(f).Decode(&raw); err != nil {
		return fmt.Errorf("decode gob: %w", err)
	}
	for wordform, fields := range raw {
		d.Entries[d.normalize(wordform)] = fields
	}
	return nil
}

// SaveGob serializes an entries map to a gob-encoded file at path.
func SaveGob(entries map[string]map[string]string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(entries); err != nil {
		return fmt.Errorf("encode gob: %w", err)
	}
	return nil
}
