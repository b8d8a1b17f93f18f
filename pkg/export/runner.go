// Package export runs batches of formatting jobs over the Cartesian
// product of selected languages and data types, and keeps a SQLite
// ledger of past runs.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/wordforge/wordforge/pkg/formatter"
)

// Config selects what a batch exports and where. It replaces any
// reliance on process state: everything a run needs is in here.
type Config struct {
	Languages  []string
	DataTypes  []string
	InputDir   string
	OutputDir  string
	OutputType string
	Overwrite  bool
	Cache      bool
}

// JobResult is the outcome of one language/data-type job.
type JobResult struct {
	Language string
	DataType string
	Path     string
	Entries  int
	Err      error
}

// Summary aggregates a finished batch.
type Summary struct {
	Jobs   []JobResult
	OK     int
	Failed int
}

// Runner executes export batches sequentially, one job per
// language/data-type pair. A failed job never aborts the batch.
type Runner struct {
	runs   *RunDB
	logger *slog.Logger
}

// NewRunner creates a Runner. runs may be nil to skip the ledger.
func NewRunner(runs *RunDB, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{runs: runs, logger: logger}
}

// InputPath returns the conventional location of a raw query file.
func InputPath(inputDir, language, dataType string) string {
	name := strings.ReplaceAll(strings.ToLower(dataType), "-", "_") + "_queried.json"
	return filepath.Join(inputDir, strings.ToLower(language), name)
}

// Run walks the language × data-type product and formats each pair,
// logging one ✔/✘ line per job with a running progress counter.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Summary, error) {
	total := len(cfg.Languages) * len(cfg.DataTypes)
	if total == 0 {
		return nil, fmt.Errorf("no languages or data types selected")
	}

	summary := &Summary{}
	done := 0
	for _, lang := range cfg.Languages {
		for _, dt := range cfg.DataTypes {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			done++

			job := r.runJob(ctx, cfg, lang, dt)
			summary.Jobs = append(summary.Jobs, job)

			if job.Err != nil {
				summary.Failed++
				r.logger.Info(fmt.Sprintf("✘ Failed to export %s %s data (%d/%d)", lang, dt, done, total),
					"error", job.Err)
			} else {
				summary.OK++
				r.logger.Info(fmt.Sprintf("✔ Exported %s %s data (%d/%d)", lang, dt, done, total),
					"entries", job.Entries, "path", job.Path)
			}
		}
	}
	return summary, nil
}

func (r *Runner) runJob(ctx context.Context, cfg Config, lang, dt string) JobResult {
	job := JobResult{Language: lang, DataType: dt}
	started := now()

	f, err := formatter.Get(lang, dt)
	if err != nil {
		job.Err = err
	} else {
		res, err := f.Format(ctx, formatter.Request{
			InputPath:  InputPath(cfg.InputDir, lang, dt),
			OutputDir:  cfg.OutputDir,
			OutputType: cfg.OutputType,
			Overwrite:  cfg.Overwrite,
			Cache:      cfg.Cache,
		})
		if err != nil {
			job.Err = err
		} else {
			job.Path = res.Path
			job.Entries = res.Entries
		}
	}

	if r.runs != nil {
		run := Run{
			Language:   lang,
			DataType:   dt,
			OutputType: cfg.OutputType,
			OutputPath: job.Path,
			Status:     StatusOK,
			Entries:    job.Entries,
			StartedAt:  started,
			FinishedAt: now(),
		}
		if job.Err != nil {
			run.Status = StatusFailed
			msg := job.Err.Error()
			run.Error = &msg
		}
		if err := r.runs.RecordRun(run); err != nil {
			r.logger.Error("failed to record run", "language", lang, "data_type", dt, "error", err)
		}
	}
	return job
}
