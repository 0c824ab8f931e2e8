package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vision-cli/internal/csvio"
	"github.com/sells-group/vision-cli/internal/ingest"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract unique category tier paths from the categories export",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask("extract", runExtract)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract() (taskResult, error) {
	sc, err := csvio.Open(inputPath("categories.csv"), scanOpts("categories", ingest.CategoryFields))
	if err != nil {
		return taskResult{}, eris.Wrap(err, "extract: open categories")
	}
	defer sc.Close()

	var stats ingest.RowStats
	tiers := ingest.NewTierSet(cfg.Extract.Depth)
	sep := cfg.Extract.SeparatorByte()

	for sc.Scan() {
		category := sc.Get(ingest.FieldCategory)
		if category == "" {
			stats.Skip("missing_category")
			continue
		}
		if !tiers.Add(cfg.CSV.Provider, category, sep) {
			stats.Skip("short_path")
			continue
		}
		stats.Accept()
	}
	if err := sc.Err(); err != nil {
		return taskResult{}, eris.Wrap(err, "extract: scan categories")
	}

	if err := csvio.WriteJSONL(outputPath("tiers.jsonl"), tiers.Rows()); err != nil {
		return taskResult{}, eris.Wrap(err, "extract: write tiers")
	}
	zap.L().Info("tiers extracted", zap.Int("unique", tiers.Len()))
	return taskResult{Rows: stats.Accepted, Skipped: stats.TotalSkipped()}, nil
}
