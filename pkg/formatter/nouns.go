package formatter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wordforge/wordforge/pkg/dataset"
	"github.com/wordforge/wordforge/pkg/nouns"
)

func init() {
	// Languages whose noun genders are covered by the M/F mapper.
	// Others can still run through it; unmapped genders contribute no
	// annotation.
	for _, lang := range []string{"French", "Spanish", "Italian", "Portuguese"} {
		Register(&nounsFormatter{language: lang})
	}
}

type nounsFormatter struct {
	language string
}

func (f *nounsFormatter) Language() string { return f.language }
func (f *nounsFormatter) DataType() string { return "nouns" }
func (f *nounsFormatter) Description() string {
	return fmt.Sprintf("%s nouns from Wikidata lexemes", f.language)
}

func (f *nounsFormatter) datasetID() string {
	return strings.ToLower(f.language) + "-nouns"
}

// Format reads the raw query file, runs the noun merge, and writes the
// dataset file plus manifest.yaml (and optionally a gob cache) into
// OutputDir/<language>-nouns/.
func (f *nounsFormatter) Format(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := ReadRawNouns(req.InputPath)
	if err != nil {
		return nil, err
	}

	formatted := nouns.Format(records)

	outputType := req.OutputType
	if outputType == "" {
		outputType = "json"
	}

	outDir := filepath.Join(req.OutputDir, f.datasetID())
	if err := ensureDir(outDir); err != nil {
		return nil, err
	}

	dataFile := "nouns." + outputType
	outPath := filepath.Join(outDir, dataFile)
	if !req.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return nil, fmt.Errorf("%s already exists (pass overwrite to replace)", outPath)
		}
	}

	switch outputType {
	case "json":
		err = WriteJSON(outPath, formatted)
	case "csv":
		err = WriteDelimited(outPath, formatted, ',')
	case "tsv":
		err = WriteDelimited(outPath, formatted, '\t')
	default:
		return nil, fmt.Errorf("unsupported output type %q", outputType)
	}
	if err != nil {
		return nil, err
	}

	if req.Cache {
		if err := dataset.SaveGob(entriesOf(formatted), filepath.Join(outDir, "data.gob")); err != nil {
			return nil, err
		}
	}

	err = dataset.WriteManifest(filepath.Join(outDir, "manifest.yaml"), &dataset.Manifest{
		ID:        f.datasetID(),
		Language:  f.language,
		DataType:  "nouns",
		Source:    "Wikidata lexeme query",
		SourceURL: "https://query.wikidata.org",
		License:   "CC0",
		Generated: time.Now().UTC().Format(time.RFC3339),
		DataFile:  dataFile,
		Entries:   len(formatted),
		Format:    dataset.FormatSpec{Normalize: "none"},
	})
	if err != nil {
		return nil, err
	}

	return &Result{Path: outPath, Entries: len(formatted)}, nil
}

// entriesOf converts the typed noun map to the generic dataset shape.
func entriesOf(formatted map[string]*nouns.Entry) map[string]map[string]string {
	entries := make(map[string]map[string]string, len(formatted))
	for wordform, e := range formatted {
		entries[wordform] = map[string]string{"plural": e.Plural, "form": e.Form}
	}
	return entries
}
