package riotapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"league-assets/core/decode"
	"league-assets/core/transport"

	"go.uber.org/zap"
)

// TokenHeader carries the API key.
const TokenHeader = "X-Riot-Token"

// ErrNoAPIKey is returned when the client is built without a key.
var ErrNoAPIKey = errors.New("riot api key is not configured")

// APIError is the status object the API returns instead of a response when something goes wrong.
// A 403 usually means the key has expired.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api: %d %s", e.StatusCode, e.Message)
}

// Request describes one endpoint returning T.
type Request[T any] struct {
	// Service is the API family, such as "summoner" or "platform".
	Service string
	// Path follows the service and includes the endpoint version.
	Path  string
	Query url.Values
}

// Client sends requests to one region of the dynamic API.
type Client struct {
	transport *transport.Client
	baseURL   string
	logger    *zap.Logger
}

// NewClient creates a client for cfg.Region, or cfg.BaseURL when set.
func NewClient(cfg Config, httpCfg transport.Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		region, err := ParseRegion(cfg.Region)
		if err != nil {
			return nil, err
		}
		base = region.Host()
	}

	return &Client{
		transport: transport.New(httpCfg, logger, transport.WithHeader(TokenHeader, cfg.APIKey)),
		baseURL:   base,
		logger:    logger,
	}, nil
}

// URL is the full location of req.
func (r Request[T]) URL(base string) string {
	u := base + "/lol/" + r.Service + "/" + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// Send performs req and decodes its response.
func Send[T any](ctx context.Context, c *Client, req Request[T]) (T, error) {
	var out T

	target := req.URL(c.baseURL)
	body, err := c.transport.Fetch(ctx, target)
	if err != nil {
		var se *transport.StatusError
		if errors.As(err, &se) {
			if apiErr := parseStatus(se.Body); apiErr != nil {
				c.logger.Debug("API error", zap.String("url", target), zap.Int("status", apiErr.StatusCode))
				return out, apiErr
			}
			return out, &APIError{StatusCode: se.StatusCode, Message: "unexpected response"}
		}
		return out, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", req.Service, err)
	}
	return out, nil
}

// parseStatus reads {"status": {"status_code": 404, "message": "..."}}.
func parseStatus(body []byte) *APIError {
	root, err := decode.Parse(body)
	if err != nil {
		return nil
	}
	status, err := root.Object("status")
	if err != nil {
		return nil
	}
	code, err := decode.Required(status, "status_code", decode.Int)
	if err != nil {
		return nil
	}
	return &APIError{
		StatusCode: code,
		Message:    decode.Lenient(status, "message", decode.String, ""),
	}
}
