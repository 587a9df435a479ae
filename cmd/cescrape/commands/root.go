package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cescrape/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose *bool
var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:   "cescrape",
	Short: "cescrape crawls the EU Circular Economy good-practices directory and charts the results.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "cescrape")
		if err != nil {
			slog.Warn("failed to set up telemetry", "err", err)
		}
		telemetry.InstrumentPerfStats(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shut down telemetry", "err", err)
		}
	},
	SilenceUsage: true,
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
