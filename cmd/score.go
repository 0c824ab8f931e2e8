package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vision-cli/internal/csvio"
	"github.com/sells-group/vision-cli/internal/ingest"
	"github.com/sells-group/vision-cli/internal/model"
	"github.com/sells-group/vision-cli/internal/scorer"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score category rows against the IAB dictionary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask("score", runScore)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore() (taskResult, error) {
	dict, skipped, err := scorer.LoadDictionary(dictionaryPath())
	if err != nil {
		return taskResult{}, eris.Wrap(err, "score: load dictionary")
	}
	if skipped > 0 {
		zap.L().Warn("dictionary lines skipped", zap.Int("skipped", skipped))
	}

	sc, err := csvio.Open(inputPath("categories.csv"), scanOpts("categories", ingest.CategoryFields))
	if err != nil {
		return taskResult{}, eris.Wrap(err, "score: open categories")
	}
	defer sc.Close()

	var stats ingest.RowStats
	acc := scorer.NewAccumulator()
	scfg := scorer.Config{
		MinScore:  cfg.IAB.MinScore,
		Separator: cfg.Extract.SeparatorByte(),
		Provider:  cfg.CSV.Provider,
	}

	for sc.Scan() {
		product := model.ProductKey(sc.Get(ingest.FieldInsertionOrder))
		if product == "" {
			stats.Skip("missing_insertion_order")
			continue
		}
		impressions, ok := csvio.ParseFloat(sc.Get(ingest.FieldImpressions))
		if !ok {
			stats.Skip("bad_impressions")
			continue
		}
		date := model.NormalizeDate(sc.Get(ingest.FieldDate))
		if acc.Score(product, date, sc.Get(ingest.FieldCategory), impressions, dict, scfg) == 0 {
			stats.Skip("no_candidates")
			continue
		}
		stats.Accept()
	}
	if err := sc.Err(); err != nil {
		return taskResult{}, eris.Wrap(err, "score: scan categories")
	}

	rows := acc.Rows()
	if err := csvio.WriteJSONL(outputPath("iab.jsonl"), rows); err != nil {
		return taskResult{}, eris.Wrap(err, "score: write taxonomy")
	}
	zap.L().Info("taxonomy scored",
		zap.Int("rows", len(rows)),
		zap.Int("products", acc.Products()),
	)
	return taskResult{Rows: stats.Accepted, Skipped: stats.TotalSkipped()}, nil
}
