package ceplatform

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubFetcher serves canned page bodies without touching the network.
// Pages absent from both maps come back empty (zero cards).
type stubFetcher struct {
	cards   map[int]int
	errs    map[int]error
	fetched []int
}

func (f *stubFetcher) FetchListingPage(ctx context.Context, page int) ([]byte, error) {
	f.fetched = append(f.fetched, page)
	if err := f.errs[page]; err != nil {
		return nil, err
	}
	return []byte(strings.Repeat(fullCardHtml, f.cards[page])), nil
}

func TestCrawlStopsAtFirstEmptyPage(t *testing.T) {
	captureLogs(t)

	fetcher := &stubFetcher{cards: map[int]int{0: 2}}
	records, err := Crawl(context.Background(), fetcher, CrawlOptions{})
	require.NoError(t, err)

	require.Len(t, records, 2)
	require.Equal(t, []int{0, 1}, fetcher.fetched)
}

func TestCrawlHonorsPageCeiling(t *testing.T) {
	captureLogs(t)

	cards := map[int]int{}
	for page := 0; page < 1000; page++ {
		cards[page] = 1
	}
	fetcher := &stubFetcher{cards: cards}

	records, err := Crawl(context.Background(), fetcher, CrawlOptions{MaxPages: 1000})
	require.NoError(t, err)

	require.Len(t, fetcher.fetched, PageCeiling)
	require.Len(t, records, PageCeiling)
	for _, page := range fetcher.fetched {
		require.Less(t, page, PageCeiling)
	}
}

func TestCrawlHonorsMaxPages(t *testing.T) {
	captureLogs(t)

	fetcher := &stubFetcher{cards: map[int]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1}}
	records, err := Crawl(context.Background(), fetcher, CrawlOptions{MaxPages: 3})
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2}, fetcher.fetched)
	require.Len(t, records, 3)
}

func TestCrawlSkipPagesDoNotTerminate(t *testing.T) {
	captureLogs(t)

	fetcher := &stubFetcher{cards: map[int]int{0: 1, 2: 1}}
	records, err := Crawl(context.Background(), fetcher, CrawlOptions{SkipPages: []int{1}})
	require.NoError(t, err)

	// page 1 is never fetched, page 3 terminates as the first empty page
	require.Equal(t, []int{0, 2, 3}, fetcher.fetched)
	require.Len(t, records, 2)
}

func TestCrawlSkipsFailedPages(t *testing.T) {
	captureLogs(t)

	fetcher := &stubFetcher{
		cards: map[int]int{0: 1, 2: 2},
		errs:  map[int]error{1: fmt.Errorf("status 503")},
	}
	records, err := Crawl(context.Background(), fetcher, CrawlOptions{})
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3}, fetcher.fetched)
	require.Len(t, records, 3)
}

func TestCrawlCancelledContext(t *testing.T) {
	captureLogs(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &stubFetcher{cards: map[int]int{0: 1}}
	records, err := Crawl(ctx, fetcher, CrawlOptions{})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, records)
	require.Empty(t, fetcher.fetched)
}
