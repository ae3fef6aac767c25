package transport

import "time"

// Config holds configuration for outbound HTTP requests.
type Config struct {
	// TimeoutSeconds bounds a single request, including reading the body.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRetries caps retries after HTTP 429. Zero retries until the server lets us through.
	MaxRetries int `mapstructure:"max_retries" default:"0"`
	// DefaultRetryAfter is used when a 429 response carries no usable Retry-After header.
	DefaultRetryAfter time.Duration `mapstructure:"default_retry_after" default:"1s"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"league-assets"`
}
