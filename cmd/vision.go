package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vision-cli/internal/vision"
)

var visionCmd = &cobra.Command{
	Use:   "vision",
	Short: "Assemble per-product vision documents from all sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTask("vision", runVision)
	},
}

func init() {
	rootCmd.AddCommand(visionCmd)
}

func runVision() (taskResult, error) {
	asm := vision.New(vision.Options{
		Delimiter:        cfg.CSV.DelimiterByte(),
		Encoding:         cfg.CSV.Encoding,
		Provider:         cfg.CSV.Provider,
		Overrides:        cfg.CSV.Columns,
		DeviceMinShare:   cfg.Devices.MinShare,
		DevicePath:       inputPath("device.csv"),
		DemographicsPath: outputPath("demographics.jsonl"),
		UniquePath:       inputPath("unique.csv"),
		CategoriesPath:   inputPath("categories.csv"),
		TaxonomyPath:     outputPath("iab.jsonl"),
		OutputDir:        cfg.Paths.Output,
	})

	res, err := asm.Run(rootCmd.Context())
	if err != nil {
		return taskResult{}, eris.Wrap(err, "vision: assemble")
	}

	var rows, skipped int
	for _, st := range res.Stats {
		rows += st.Accepted
		skipped += st.TotalSkipped()
	}
	zap.L().Info("vision documents assembled", zap.Int("products", len(res.Products)))
	return taskResult{Rows: rows, Skipped: skipped}, nil
}
