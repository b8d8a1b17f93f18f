package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wordforge/wordforge/pkg/export"
	"github.com/wordforge/wordforge/pkg/language"
)

// cmdExport runs a non-interactive batch export over the selected
// language × data-type product.
func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	languages := fs.String("languages", "", "comma-separated languages, or 'all'")
	dataTypes := fs.String("data-types", "", "comma-separated data types, or 'all'")
	inputDir := fs.String("input-dir", "queries", "directory holding raw query results")
	outputDir := fs.String("output-dir", "exports", "output directory for datasets")
	outputType := fs.String("output-type", "json", "output format: json, csv or tsv")
	overwrite := fs.Bool("overwrite", false, "overwrite existing exports")
	cache := fs.Bool("cache", false, "also write data.gob caches")
	catalogPath := fs.String("catalog", "languages.yaml", "language catalog override file")
	runDB := fs.String("run-db", "", "run ledger path (default <output-dir>/runs.db)")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	catalog, err := language.LoadCatalog(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	langs, err := selectLanguages(catalog, *languages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	types, err := selectDataTypes(catalog, *dataTypes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *runDB == "" {
		*runDB = filepath.Join(*outputDir, "runs.db")
	}
	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	runs, err := export.OpenRunDB(*runDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer runs.Close()

	runner := export.NewRunner(runs, logger)
	summary, err := runner.Run(context.Background(), export.Config{
		Languages:  langs,
		DataTypes:  types,
		InputDir:   *inputDir,
		OutputDir:  *outputDir,
		OutputType: *outputType,
		Overwrite:  *overwrite,
		Cache:      *cache,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d exported, %d failed.\n", summary.OK, summary.Failed)
	if *overwrite {
		fmt.Println("Data request completed successfully!")
	}
}

// selectLanguages resolves a comma list (or "all") against the catalog.
func selectLanguages(catalog *language.Catalog, arg string) ([]string, error) {
	if strings.EqualFold(arg, "all") {
		return catalog.Names(), nil
	}
	var langs []string
	for _, name := range strings.Split(arg, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		l, ok := catalog.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("unknown language %q", name)
		}
		langs = append(langs, l.Name)
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no languages selected")
	}
	return langs, nil
}

// selectDataTypes resolves a comma list (or "all") against the catalog.
func selectDataTypes(catalog *language.Catalog, arg string) ([]string, error) {
	if strings.EqualFold(arg, "all") {
		return catalog.DataTypes, nil
	}
	var types []string
	for _, dt := range strings.Split(arg, ",") {
		dt = strings.TrimSpace(dt)
		if dt == "" {
			continue
		}
		if !catalog.HasDataType(dt) {
			return nil, fmt.Errorf("unknown data type %q", dt)
		}
		types = append(types, strings.ToLower(dt))
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no data types selected")
	}
	return types, nil
}
