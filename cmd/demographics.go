package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vision-cli/internal/csvio"
	"github.com/sells-group/vision-cli/internal/ingest"
	"github.com/sells-group/vision-cli/internal/model"
)

var demographicsCmd = &cobra.Command{
	Use:   "demographics",
	Short: "Normalize age ranges into canonical bins grouped by product, date, and gender",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask("demographics", runDemographics)
	},
}

func init() {
	rootCmd.AddCommand(demographicsCmd)
}

func runDemographics() (taskResult, error) {
	sc, err := csvio.Open(gendersPath(), scanOpts("genders", ingest.GenderFields))
	if err != nil {
		return taskResult{}, eris.Wrap(err, "demographics: open genders")
	}
	defer sc.Close()

	var stats ingest.RowStats
	acc := ingest.NewAgeAccumulator()

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
		gender := sc.Get(ingest.FieldGender)
		if !acc.Add(product, date, gender, sc.Get(ingest.FieldAge), impressions) {
			stats.Skip("unrecognized_age")
			continue
		}
		stats.Accept()
	}
	if err := sc.Err(); err != nil {
		return taskResult{}, eris.Wrap(err, "demographics: scan genders")
	}

	rows := acc.Rows()
	if err := csvio.WriteJSONL(outputPath("demographics.jsonl"), rows); err != nil {
		return taskResult{}, eris.Wrap(err, "demographics: write bins")
	}
	zap.L().Info("demographics normalized", zap.Int("bins", len(rows)))
	return taskResult{Rows: stats.Accepted, Skipped: stats.TotalSkipped()}, nil
}
