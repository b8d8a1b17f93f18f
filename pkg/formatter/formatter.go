// Package formatter turns raw Wikidata query results into formatted
// datasets. Each language/data-type pair is handled by a registered
// Formatter; the export runner resolves pairs against this registry.
package formatter

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Request carries everything a formatter needs. All paths are explicit:
// whether a formatter runs standalone or as part of a batch is decided
// by the caller, never inferred from the invocation path.
type Request struct {
	// InputPath is the raw query result file to format.
	InputPath string
	// OutputDir is the root export directory; the formatter writes into
	// a per-dataset subdirectory of it.
	OutputDir string
	// OutputType is one of "json", "csv" or "tsv".
	OutputType string
	// Overwrite allows replacing an existing export file.
	Overwrite bool
	// Cache additionally writes a data.gob sidecar for fast serving.
	Cache bool
}

// Result reports what a formatter produced.
type Result struct {
	Path    string
	Entries int
}

// Formatter formats one data type for one language.
type Formatter interface {
	// Language returns the language name (e.g. "French").
	Language() string
	// DataType returns the data type handled (e.g. "nouns").
	DataType() string
	// Description returns a human-readable description.
	Description() string
	// Format reads the raw query file, normalizes it, and writes the
	// dataset plus its manifest into a subdirectory of req.OutputDir.
	Format(ctx context.Context, req Request) (*Result, error)
}

var (
	registryMu sync.RWMutex
	formatters = make(map[string]Formatter)
)

func key(language, dataType string) string {
	return strings.ToLower(language) + "/" + strings.ToLower(dataType)
}

// Register adds a formatter to the global registry.
func Register(f Formatter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	formatters[key(f.Language(), f.DataType())] = f
}

// Get returns the formatter for a language/data-type pair, or an error
// if none is registered.
func Get(language, dataType string) (Formatter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := formatters[key(language, dataType)]
	if !ok {
		return nil, fmt.Errorf("no formatter for %s %s", language, dataType)
	}
	return f, nil
}

// All returns all registered formatters sorted by language then data type.
func All() []Formatter {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]Formatter, 0, len(formatters))
	for _, f := range formatters {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Language() != result[j].Language() {
			return result[i].Language() < result[j].Language()
		}
		return result[i].DataType() < result[j].DataType()
	})
	return result
}
