package ceplatform

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"strconv"
	"time"

	"cescrape/lib/restyutil"
	"cescrape/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type ClientOptions struct {
	// BaseURL of the paginated listing, defaults to BaseListingURL.
	BaseURL   string
	UserAgent string
	// Timeout for one HTTP exchange, defaults to 10s.
	Timeout time.Duration
	// Retries is the number of additional attempts after a failed
	// fetch, RetryWait is the pause between them.
	Retries   int
	RetryWait time.Duration
	// DumpDir, when set, records every HTTP exchange to disk for
	// debugging.
	DumpDir string
}

type Client struct {
	baseURL string
	http    *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = BaseListingURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 10
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)

	client.SetRetryCount(opts.Retries)
	client.SetRetryWaitTime(opts.RetryWait)
	client.SetRetryMaxWaitTime(opts.RetryWait)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		return err != nil || !res.IsSuccess()
	})

	telemetry.InstrumentResty(client, "cescrape.scrapers.ceplatform.http")
	if opts.DumpDir != "" {
		restyutil.InstrumentClient(client, restyutil.NewFilesystemOutput(opts.DumpDir))
	}

	return &Client{
		baseURL: baseURL,
		http:    client,
	}, nil
}

// FetchListingPage performs a GET for the given zero-based page index
// and returns the raw page body. Retries are handled inside the client,
// an error here means every attempt failed.
func (c *Client) FetchListingPage(ctx context.Context, page int) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:FetchListingPage")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch listing page")
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}
	if !res.IsSuccess() {
		err := fmt.Errorf("fetch page %d: unexpected status %d", page, res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	return res.Body(), nil
}
