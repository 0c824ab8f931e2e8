package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vision-cli/internal/config"
)

var (
	cfg        *config.Config
	flagInput  string
	flagOutput string
)

var rootCmd = &cobra.Command{
	Use:   "vision-cli",
	Short: "Campaign CSV aggregation into per-product vision documents",
	Long:  "Ingests advertising-campaign CSV exports (categories, demographics, device, engagement), normalizes and re-buckets them, and assembles one vision analytics document per product.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if flagInput != "" {
			cfg.Paths.Input = flagInput
		}
		if flagOutput != "" {
			cfg.Paths.Output = flagOutput
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "directory containing the source CSV exports (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "directory for intermediates and vision documents (default from config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
