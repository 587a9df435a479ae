package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cescrape/lib/configutil"
	"cescrape/lib/scrapers/ceplatform"
	"cescrape/services/goodpractices/dataset"

	"github.com/spf13/cobra"
)

// Config carries optional defaults from cescrape.json5, flags take
// precedence where both are given.
type Config struct {
	BaseUrl        string `json:"base_url"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

var (
	scrapeOutput   *string
	scrapeMaxPages *int
	scrapeSkip     *[]int
	scrapeRetries  *int
	scrapeDelay    *int
	scrapeBaseUrl  *string
	scrapeDumpDir  *string
)

func init() {
	scrapeOutput = scrapeCmd.Flags().String("output", "good_practices.csv", "Path to the CSV output.")
	scrapeMaxPages = scrapeCmd.Flags().Int("max-pages", ceplatform.PageCeiling, "Maximum number of pages to crawl.")
	scrapeSkip = scrapeCmd.Flags().IntSlice("skip-page", nil, "Page index to skip (0-indexed), repeatable.")
	scrapeRetries = scrapeCmd.Flags().Int("retries", 3, "Number of retries per page before giving up.")
	scrapeDelay = scrapeCmd.Flags().Int("delay", 5, "Delay in seconds between fetch attempts and between pages.")
	scrapeBaseUrl = scrapeCmd.Flags().String("base-url", "", "Override the base listing URL.")
	scrapeDumpDir = scrapeCmd.Flags().String("http-dump", "", "Directory to record raw HTTP exchanges to, for debugging.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--output <path/to/output.csv>]",
	Short: "Crawls the paginated good-practices directory into a CSV dataset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configutil.ReadConfig[Config]("cescrape.json5")
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read config: %w", err)
		}

		baseUrl := *scrapeBaseUrl
		if baseUrl == "" {
			baseUrl = cfg.BaseUrl
		}

		client, err := ceplatform.NewClient(ceplatform.ClientOptions{
			BaseURL:   baseUrl,
			UserAgent: cfg.UserAgent,
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
			Retries:   *scrapeRetries,
			RetryWait: time.Duration(*scrapeDelay) * time.Second,
			DumpDir:   *scrapeDumpDir,
		})
		if err != nil {
			return fmt.Errorf("initialize client: %w", err)
		}

		slog.Info("starting crawl", "max_pages", *scrapeMaxPages, "skip_pages", *scrapeSkip)
		t1 := time.Now()

		records, err := ceplatform.Crawl(cmd.Context(), client, ceplatform.CrawlOptions{
			MaxPages:  *scrapeMaxPages,
			SkipPages: *scrapeSkip,
			Delay:     time.Duration(*scrapeDelay) * time.Second,
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		slog.Info("crawl finished", "records", len(records), "seconds", time.Since(t1).Seconds())
		if len(records) == 0 {
			return fmt.Errorf("crawl produced no records, the site may have changed or be unreachable")
		}

		if err := dataset.Write(*scrapeOutput, records); err != nil {
			return fmt.Errorf("persist dataset: %w", err)
		}
		return nil
	},
}
