package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wordforge/wordforge/pkg/formatter"
)

// cmdFormat runs a single formatter over one raw query file, the
// standalone counterpart of a batch export job.
func cmdFormat(args []string) {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	lang := fs.String("language", "French", "language to format")
	dataType := fs.String("data-type", "nouns", "data type to format")
	input := fs.String("input", "", "raw query file (default <data-type>_queried.json)")
	outputDir := fs.String("output-dir", "exports", "output directory for datasets")
	outputType := fs.String("output-type", "json", "output format: json, csv or tsv")
	overwrite := fs.Bool("overwrite", false, "overwrite an existing export")
	cache := fs.Bool("cache", false, "also write a data.gob cache")
	fs.Parse(args)

	if *input == "" {
		*input = strings.ReplaceAll(strings.ToLower(*dataType), "-", "_") + "_queried.json"
	}

	f, err := formatter.Get(*lang, *dataType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\nAvailable formatters:\n", err)
		for _, f := range formatter.All() {
			fmt.Fprintf(os.Stderr, "  %-12s %-10s %s\n", f.Language(), f.DataType(), f.Description())
		}
		os.Exit(1)
	}

	res, err := f.Format(context.Background(), formatter.Request{
		InputPath:  *input,
		OutputDir:  *outputDir,
		OutputType: *outputType,
		Overwrite:  *overwrite,
		Cache:      *cache,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s with %d entries.\n", res.Path, res.Entries)
}
