package main

import "github.com/spf13/cobra"

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run extract, demographics, score, and vision in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runTask("extract", runExtract); err != nil {
			return err
		}
		if err := runTask("demographics", runDemographics); err != nil {
			return err
		}
		if err := runTask("score", runScore); err != nil {
			return err
		}
		return runTask("vision", runVision)
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
