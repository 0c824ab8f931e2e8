package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/vision-cli/internal/csvio"
	"github.com/sells-group/vision-cli/internal/ingest"
	"github.com/sells-group/vision-cli/internal/runlog"
)

// taskResult is what every task body reports for the run journal.
type taskResult struct {
	Rows    int
	Skipped int
}

// runTask executes a task body, logs its outcome, and journals the run.
// Journal failures are logged but never mask the task's own error.
func runTask(task string, fn func() (taskResult, error)) error {
	if err := os.MkdirAll(cfg.Paths.Output, 0o755); err != nil {
		return eris.Wrapf(err, "%s: create output dir", task)
	}

	start := time.Now()
	res, err := fn()

	entry := runlog.Entry{
		RunID:       uuid.NewString(),
		Task:        task,
		Status:      "complete",
		StartedAt:   start.UTC(),
		CompletedAt: time.Now().UTC(),
		Rows:        res.Rows,
		Skipped:     res.Skipped,
	}
	if err != nil {
		entry.Status = "failed"
		entry.Error = err.Error()
	}
	if jerr := runlog.New(journalPath()).Append(entry); jerr != nil {
		zap.L().Warn("journal append failed", zap.Error(jerr))
	}

	if err != nil {
		zap.L().Error("task failed", zap.String("task", task), zap.Error(err))
		return err
	}
	zap.L().Info("task complete",
		zap.String("task", task),
		zap.String("run_id", entry.RunID),
		zap.Int("rows", res.Rows),
		zap.Int("skipped", res.Skipped),
		zap.Duration("elapsed", entry.CompletedAt.Sub(entry.StartedAt)),
	)
	return nil
}

func journalPath() string {
	return filepath.Join(cfg.Paths.Output, "runs.jsonl")
}

func inputPath(name string) string {
	return filepath.Join(cfg.Paths.Input, name)
}

func outputPath(name string) string {
	return filepath.Join(cfg.Paths.Output, name)
}

// gendersPath probes the two accepted spellings of the demographics export.
func gendersPath() string {
	path := inputPath("genders.csv")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return inputPath("gender.csv")
}

// dictionaryPath resolves the tier1→IAB dictionary location; relative paths
// are anchored at the input directory.
func dictionaryPath() string {
	if filepath.IsAbs(cfg.IAB.Dictionary) {
		return cfg.IAB.Dictionary
	}
	return filepath.Join(cfg.Paths.Input, cfg.IAB.Dictionary)
}

// scanOpts builds scan options for one source file alias.
func scanOpts(file string, fields []csvio.Field) csvio.ScanOptions {
	return csvio.ScanOptions{
		Delimiter: cfg.CSV.DelimiterByte(),
		Encoding:  cfg.CSV.Encoding,
		Provider:  cfg.CSV.Provider,
		Fields:    fields,
		Overrides: cfg.CSV.Columns[file],
		Probe:     ingest.ProbeField,
	}
}
