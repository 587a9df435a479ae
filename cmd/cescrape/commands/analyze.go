package commands

import (
	"fmt"
	"log/slog"
	"os"

	"cescrape/lib/scrapers/ceplatform"
	"cescrape/services/goodpractices/analyze"
	"cescrape/services/goodpractices/dataset"

	"github.com/spf13/cobra"
)

var (
	analyzeInput   *string
	analyzeOutDir  *string
	analyzeColumns *[]string
)

func init() {
	analyzeInput = analyzeCmd.Flags().String("input", "good_practices.csv", "Path to the scraped CSV dataset.")
	analyzeOutDir = analyzeCmd.Flags().String("output-dir", "plots", "Folder where generated charts are stored.")
	analyzeColumns = analyzeCmd.Flags().StringSlice(
		"columns",
		ceplatform.CategoricalColumns,
		"Columns to chart.",
	)
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [--input <path/to/dataset.csv>]",
	Short: "Tabulates tag frequencies per column and renders one chart each.",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := dataset.Read(*analyzeInput)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		slog.Info("dataset loaded", "records", len(records), "path", *analyzeInput)

		for _, column := range *analyzeColumns {
			counts, err := analyze.Tabulate(records, column)
			if err != nil {
				slog.Warn("column not present in dataset, skipping", "column", column)
				continue
			}

			analyze.RenderTable(os.Stdout, column, counts)

			path, err := analyze.RenderChart(cmd.Context(), counts, column, *analyzeOutDir)
			if err != nil {
				return err
			}
			slog.Info("chart saved", "column", column, "path", path)
		}

		return nil
	},
}
