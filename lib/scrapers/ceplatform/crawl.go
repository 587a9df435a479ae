package ceplatform

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

// PageCeiling bounds the crawl regardless of configuration, the
// directory has never come close to this many pages and a misbehaving
// termination signal must not loop forever.
const PageCeiling = 80

// PageFetcher retrieves the raw body of one listing page.
type PageFetcher interface {
	FetchListingPage(ctx context.Context, page int) ([]byte, error)
}

type CrawlOptions struct {
	// MaxPages caps the crawl depth. Zero or negative means "up to
	// PageCeiling", both caps are enforced independently.
	MaxPages int
	// SkipPages are zero-based page indices to bypass without fetching.
	SkipPages []int
	// Delay is the minimum pause between successive page fetches.
	Delay time.Duration
}

// Crawl walks the paginated listing sequentially from page 0 until a
// successfully fetched page yields no cards, a cap is reached, or the
// context is cancelled. Pages that still fail after the client's
// retries are skipped with a warning so one bad page does not lose the
// rest of the dataset. Records accumulated so far are always returned.
func Crawl(ctx context.Context, fetcher PageFetcher, opts CrawlOptions) ([]Practice, error) {
	ctx, span := tracer.Start(ctx, "Crawl")
	defer span.End()

	maxPages := opts.MaxPages
	if maxPages <= 0 || maxPages > PageCeiling {
		maxPages = PageCeiling
	}
	skip := make(map[int]bool, len(opts.SkipPages))
	for _, p := range opts.SkipPages {
		skip[p] = true
	}

	var limiter *rate.Limiter
	if opts.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Delay), 1)
	}

	var all []Practice
	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			slog.Warn("crawl cancelled", "page", page, "records", len(all))
			return all, err
		}
		if skip[page] {
			slog.Info("skipping page as requested", "page", page)
			continue
		}

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return all, err
			}
		}

		body, err := fetcher.FetchListingPage(ctx, page)
		if err != nil {
			slog.Warn("giving up on page after retries", "page", page, "err", err)
			continue
		}

		practices, err := ParseListing(body)
		if err != nil {
			slog.Warn("failed to parse page, skipping", "page", page, "err", err)
			continue
		}
		if len(practices) == 0 {
			slog.Info("page yielded no cards, stopping pagination", "page", page)
			break
		}

		all = append(all, practices...)
		slog.Info("page scraped", "page", page, "total_records", len(all))
	}

	span.SetAttributes(attribute.Int("records", len(all)))
	return all, nil
}
