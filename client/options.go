package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options run before the transport chains are composed, so they only set
// knobs; the fixed wrapper order is decided by New alone.
type Option func(*Client) error

// WithHTTPTimeout sets the http.Client Timeout of both surfaces.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithTransport replaces the innermost RoundTripper (default
// http.DefaultTransport). Proxies, custom TLS and test doubles go here.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		c.base = rt
		return nil
	}
}

// WithAPIKey sets the static API key header sent on both surfaces.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("api key cannot be empty")
		}
		c.header.Set(APIKeyHeader, key)
		return nil
	}
}

// WithDebugLogging dumps each request/response at debug level when enabled
// is true.
//
// The debug transport sits innermost, so it sees the final headers; the
// Authorization value is redacted. Do not enable this option in production
// environments as it increases verbosity and logs request bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}
