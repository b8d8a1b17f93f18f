package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/wordforge/wordforge/pkg/export"
	"github.com/wordforge/wordforge/pkg/language"
)

// session holds the interactive mode configuration between the
// configure and run steps.
type session struct {
	catalog    *language.Catalog
	languages  []string
	dataTypes  []string
	outputType string
	inputDir   string
	outputDir  string
	overwrite  bool

	in *bufio.Reader
}

// cmdInteractive drives the prompt-based configure/run menu.
func cmdInteractive(args []string) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	inputDir := fs.String("input-dir", "queries", "directory holding raw query results")
	outputDir := fs.String("output-dir", "exports", "default output directory")
	catalogPath := fs.String("catalog", "languages.yaml", "language catalog override file")
	fs.Parse(args)

	catalog, err := language.LoadCatalog(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := &session{
		catalog:    catalog,
		outputType: "json",
		inputDir:   *inputDir,
		outputDir:  *outputDir,
		in:         bufio.NewReader(os.Stdin),
	}

	fmt.Println("Welcome to wordforge interactive mode!")
	for {
		fmt.Println("\nWhat would you like to do?")
		fmt.Println("  [1] Configure request")
		fmt.Println("  [2] Run configured data request")
		fmt.Println("  [3] Exit")

		switch s.prompt("> ") {
		case "1":
			s.configure()
		case "2":
			s.run()
			fmt.Println("Thank you for using wordforge!")
			return
		case "3", "":
			fmt.Println("Thank you for using wordforge!")
			return
		default:
			fmt.Println("Please choose 1, 2 or 3.")
		}
	}
}

func (s *session) prompt(label string) string {
	fmt.Print(label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// configure asks for languages, data types, output type, output
// directory and the overwrite flag, re-prompting until every answer is
// usable, then prints a summary.
func (s *session) configure() {
	fmt.Println("Follow the prompts below. Comma-separate multiple values or type 'All'.")

	for len(s.languages) == 0 {
		fmt.Printf("Available languages: %s\n", strings.Join(s.catalog.Names(), ", "))
		langs, err := selectLanguages(s.catalog, s.prompt("Select languages: "))
		if err != nil {
			fmt.Println("No language selected. Please try again.")
			continue
		}
		s.languages = langs
	}

	for len(s.dataTypes) == 0 {
		fmt.Printf("Available data types: %s\n", strings.Join(s.catalog.DataTypes, ", "))
		types, err := selectDataTypes(s.catalog, s.prompt("Select data types: "))
		if err != nil {
			fmt.Println("No data type selected. Please try again.")
			continue
		}
		s.dataTypes = types
	}

	for {
		answer := s.prompt("Select output type (json/csv/tsv) [json]: ")
		if answer == "" {
			answer = "json"
		}
		answer = strings.ToLower(answer)
		if answer == "json" || answer == "csv" || answer == "tsv" {
			s.outputType = answer
			break
		}
		fmt.Println("Invalid output type selected. Please try again.")
	}

	if dir := s.prompt(fmt.Sprintf("Enter output directory (default: %s): ", s.outputDir)); dir != "" {
		s.outputDir = dir
	}

	answer := s.prompt("Overwrite existing files? (Y/n): ")
	s.overwrite = answer == "" || strings.EqualFold(answer, "y")

	s.displaySummary()
}

func (s *session) displaySummary() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nSetting\tValue(s)")
	fmt.Fprintf(w, "Languages\t%s\n", strings.Join(s.languages, ", "))
	fmt.Fprintf(w, "Data Types\t%s\n", strings.Join(s.dataTypes, ", "))
	fmt.Fprintf(w, "Output Type\t%s\n", s.outputType)
	fmt.Fprintf(w, "Output Directory\t%s\n", s.outputDir)
	overwrite := "No"
	if s.overwrite {
		overwrite = "Yes"
	}
	fmt.Fprintf(w, "Overwrite\t%s\n", overwrite)
	w.Flush()
}

// run executes one export job per selected language × data-type pair.
// A failing pair is reported and the batch carries on.
func (s *session) run() {
	if len(s.languages) == 0 || len(s.dataTypes) == 0 {
		fmt.Println("Error: Please configure languages and data types.")
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	runs, err := export.OpenRunDB(filepath.Join(s.outputDir, "runs.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	defer runs.Close()

	runner := export.NewRunner(runs, logger)
	summary, err := runner.Run(context.Background(), export.Config{
		Languages:  s.languages,
		DataTypes:  s.dataTypes,
		InputDir:   s.inputDir,
		OutputDir:  s.outputDir,
		OutputType: s.outputType,
		Overwrite:  s.overwrite,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("%d exported, %d failed.\n", summary.OK, summary.Failed)
	if s.overwrite {
		fmt.Println("Data request completed successfully!")
	}
}
