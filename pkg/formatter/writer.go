package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wordforge/wordforge/pkg/nouns"
)

// ReadRawNouns decodes a raw noun query result file: a JSON array of
// records with optional singular, plural and gender fields.
func ReadRawNouns(path string) ([]nouns.RawNoun, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open query file: %w", err)
	}
	defer f.Close()

	var records []nouns.RawNoun
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode query file %s: %w", path, err)
	}
	return records, nil
}

// WriteJSON serializes a formatted map key-sorted and compact, with
// HTML escaping off so accented wordforms stay literal.
func WriteJSON(path string, formatted map[string]*nouns.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(formatted); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// WriteDelimited serializes a formatted map as csv or tsv with a
// wordform,plural,form header, rows in key order.
func WriteDelimited(path string, formatted map[string]*nouns.Entry, comma rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = comma

	if err := w.Write([]string{"wordform", "plural", "form"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, wordform := range nouns.SortedKeys(formatted) {
		entry := formatted[wordform]
		if err := w.Write([]string{wordform, entry.Plural, entry.Form}); err != nil {
			return fmt.Errorf("write row %s: %w", wordform, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
