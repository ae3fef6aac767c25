package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrTooManyRetries is returned when MaxRetries rate-limited attempts were exhausted.
var ErrTooManyRetries = errors.New("rate limited: retries exhausted")

// StatusError is returned for any non-2xx response other than a retried 429.
type StatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Client performs GET requests and retries rate-limited ones.
type Client struct {
	http   *http.Client
	header http.Header
	cfg    Config
	logger *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Set(key, value) }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a transport client.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	if cfg.DefaultRetryAfter <= 0 {
		cfg.DefaultRetryAfter = time.Second
	}

	c := &Client{
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		header: make(http.Header),
		cfg:    cfg,
		logger: logger,
	}
	if cfg.UserAgent != "" {
		c.header.Set("User-Agent", cfg.UserAgent)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch GETs url and returns the response body.
// A 429 response is re-issued after the server-provided delay.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		body, wait, err := c.do(ctx, url)
		if err != nil || wait == 0 {
			return body, err
		}

		if c.cfg.MaxRetries > 0 && attempt >= c.cfg.MaxRetries {
			return nil, fmt.Errorf("GET %s: %w", url, ErrTooManyRetries)
		}

		c.logger.Warn("Rate limited, retrying",
			zap.String("url", url),
			zap.Duration("retry_after", wait),
			zap.Int("attempt", attempt+1),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// do performs one request. A positive wait means the request was rate limited.
func (c *Client) do(ctx context.Context, url string) ([]byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	for k, v := range c.header {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", url, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, c.retryAfter(resp.Header.Get("Retry-After")), nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, 0, &StatusError{URL: url, StatusCode: resp.StatusCode, Body: body}
	}
	return body, 0, nil
}

func (c *Client) retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return c.cfg.DefaultRetryAfter
	}
	if secs == 0 {
		// Retry immediately, but keep wait positive so Fetch knows to retry.
		return time.Nanosecond
	}
	return time.Duration(secs) * time.Second
}
