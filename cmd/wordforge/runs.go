package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wordforge/wordforge/pkg/export"
)

// cmdRuns lists recent export runs from the ledger.
func cmdRuns(args []string) {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	outputDir := fs.String("output-dir", "exports", "export directory holding runs.db")
	runDB := fs.String("run-db", "", "run ledger path (default <output-dir>/runs.db)")
	limit := fs.Int("limit", 20, "maximum number of runs to show")
	fs.Parse(args)

	if *runDB == "" {
		*runDB = filepath.Join(*outputDir, "runs.db")
	}

	runs, err := export.OpenRunDB(*runDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer runs.Close()

	list, err := runs.ListRuns(*limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(list) == 0 {
		fmt.Println("No export runs recorded yet.")
		return
	}

	for _, run := range list {
		when := time.Unix(run.FinishedAt, 0).Format("2006-01-02 15:04:05")
		line := fmt.Sprintf("%s  %-10s %-14s %-4s %6d entries", when, run.Language, run.DataType, run.OutputType, run.Entries)
		if run.Status == export.StatusOK {
			fmt.Printf("✔ %s\n", line)
		} else {
			errMsg := ""
			if run.Error != nil {
				errMsg = *run.Error
			}
			fmt.Printf("✘ %s  %s\n", line, errMsg)
		}
	}
}
