package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://api.polygon.io"

	// Max 50k results per request. No pagination beyond one page: when the
	// vendor truncates, the checkpoint only advances to the max timestamp
	// actually received, so the next cycle catches up.
	maxLimit = 50000

	defaultMaxRetries     = 5
	defaultInitialBackoff = 1 * time.Second
	defaultMaxBackoff     = 60 * time.Second
	defaultTimeout        = 30 * time.Second
)

// Config configures a Client. Zero values fall back to package defaults,
// except APIKey which is required.
type Config struct {
	APIKey         string
	BaseURL        string // overridable for tests
	MaxRetries     int    // backoff ceiling: retries after the first attempt
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Timeout        time.Duration // per-request HTTP timeout
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = defaultInitialBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = defaultMaxBackoff
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// Client fetches 1-minute aggregates from the Polygon API.
//
// The credential travels only in the Authorization header, never in the URL,
// so transport errors and log lines cannot leak it.
type Client struct {
	cfg  Config
	http *resty.Client
	log  *slog.Logger
}

// New creates a Client. The API key must be present.
func New(cfg Config, log *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("polygon: API key not set")
	}
	if log == nil {
		log = slog.Default()
	}
	cfg = cfg.withDefaults()
	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetRetryCount(0) // retry policy lives in FetchMinuteBars, not in resty
	return &Client{cfg: cfg, http: hc, log: log}, nil
}

// Close closes connections.
func (c *Client) Close() error { return nil }

// FetchMinuteBars runs one bounded aggregates request for [from, to] in Unix
// milliseconds. Transient failures (429, timeout, connection error) are
// retried in place with exponential backoff up to the configured ceiling;
// 401/403 and unknown statuses return immediately. The caller only ever sees
// the final outcome.
func (c *Client) FetchMinuteBars(ctx context.Context, ticker string, from, to int64) (*Batch, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/1/minute/%d/%d", ticker, from, to)

	for attempt := 0; ; attempt++ {
		batch, retryable, err := c.doOnce(ctx, path)
		if err == nil {
			return batch, nil
		}
		if !retryable {
			return nil, err
		}
		if attempt >= c.cfg.MaxRetries {
			return nil, &RetriesExhaustedError{Attempts: attempt + 1, Err: err}
		}
		delay := Backoff(c.cfg.InitialBackoff, c.cfg.MaxBackoff, attempt)
		c.log.Warn("transient fetch failure, backing off",
			"ticker", ticker,
			"attempt", attempt+1,
			"max_retries", c.cfg.MaxRetries,
			"delay", delay,
			"error", err)
		if err := sleepCtx(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// doOnce performs a single request. retryable reports whether the failure is
// transient (rate limit, timeout, connection error).
func (c *Client) doOnce(ctx context.Context, path string) (batch *Batch, retryable bool, err error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"adjusted": "true",
			"sort":     "asc",
			"limit":    strconv.Itoa(maxLimit),
		}).
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("request failed: %w", err)
	}
	raw := resp.RawBody()
	defer raw.Close()

	switch code := resp.StatusCode(); {
	case code == http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("rate limited (429)")
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, false, &CredentialError{StatusCode: code, Body: readSnippet(raw)}
	case code < 200 || code > 299:
		return nil, false, &UnexpectedStatusError{StatusCode: code, Body: readSnippet(raw)}
	}

	var result aggregatesResponse
	if err := json.NewDecoder(raw).Decode(&result); err != nil {
		return nil, false, fmt.Errorf("parse response: %w", err)
	}
	if result.Status != "OK" {
		// DELAYED means the window reaches into data the key is not entitled
		// to yet; treat it as an empty batch rather than an error.
		if result.Status == "DELAYED" {
			c.log.Warn("API returned DELAYED, treating as empty batch")
			return &Batch{}, false, nil
		}
		return nil, false, fmt.Errorf("API status not OK: %s", result.Status)
	}
	c.log.Info("received records", "count", result.ResultsCount, "request_id", result.RequestID)
	return &Batch{ResultsCount: result.ResultsCount, Bars: result.Results}, false, nil
}

// readSnippet returns up to 512 bytes of the body for error messages.
func readSnippet(r io.Reader) string {
	buf, _ := io.ReadAll(io.LimitReader(r, 512))
	return string(buf)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
