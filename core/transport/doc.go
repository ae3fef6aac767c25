// Package transport performs the raw HTTP GETs behind static data syncs and
// dynamic API calls.
//
// Client.Fetch returns the body of a 2xx response, a *StatusError for other statuses,
// and handles rate limiting itself: an HTTP 429 is re-issued after the Retry-After
// delay in seconds (Config.DefaultRetryAfter when the header is missing or garbled).
// Retries are unbounded unless Config.MaxRetries is set; cancelling the context stops
// the wait.
package transport
