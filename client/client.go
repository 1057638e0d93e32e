package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	apierrors "github.com/PSchristopher/phoenix-admin/client/internal/errors"
)

// APIKeyHeader carries the static API key on both surfaces.
const APIKeyHeader = "x-api-key"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues JSON requests against the admin backend over two surfaces:
// a public one that never carries a credential and a private one that
// attaches the bound session's bearer token and reports 401 responses back
// to the session. Build it once at startup with New and share it.
type Client struct {
	baseURL string
	header  http.Header // default headers; immutable after New

	// construction-time knobs, consumed by New
	base    http.RoundTripper
	timeout time.Duration
	debug   bool

	public  *http.Client
	private *http.Client

	session atomic.Pointer[binding]

	closedOnce uint32 // ensures Close is idempotent
}

type binding struct{ src SessionSource }

// New constructs a Client for baseURL. defaultHeaders (typically the API key)
// are sent on every request unless the caller overrides them per call.
// Trailing slashes on baseURL are dropped.
func New(baseURL string, defaultHeaders http.Header, opts ...Option) (*Client, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: normalized,
		header:  http.Header{},
		timeout: 30 * time.Second,
	}
	// Add canonicalizes keys so per-call overrides match regardless of case.
	for k, vs := range defaultHeaders {
		for _, v := range vs {
			c.header.Add(k, v)
		}
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.buildSurfaces()
	return c, nil
}

// buildSurfaces composes the transport chains in a fixed order. Requests
// travel outermost first:
//
//	public:  headers -> debug -> base
//	private: sessionInvalidation -> auth -> headers -> debug -> base
func (c *Client) buildSurfaces() {
	base := c.base
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base}
	}
	o := originOf(c.baseURL)
	shared := withDefaultHeaders(base, c.header, o)

	c.public = &http.Client{Timeout: c.timeout, Transport: shared}
	c.private = &http.Client{
		Timeout:   c.timeout,
		Transport: withSessionInvalidation(withAuth(shared, o)),
	}
}

// NormalizeBaseURL validates an absolute http(s) URL and trims trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", fmt.Errorf("base URL cannot be empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: want http(s)://host", raw)
	}
	return trimmed, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// BindSession wires the private surface to the holder of the session
// credential. It may be called again to swap sources; passing nil unbinds.
func (c *Client) BindSession(src SessionSource) {
	if src == nil {
		c.session.Store(nil)
		return
	}
	c.session.Store(&binding{src: src})
}

// PublicRequest issues a request that never carries a session credential.
// No session binding is required.
func (c *Client) PublicRequest(ctx context.Context, method, path string, body any, header http.Header) (*Response, error) {
	return c.do(ctx, surfacePublic, c.public, method, path, body, header)
}

// PrivateRequest issues a request on the authenticated surface. The current
// credential is read when the request is sent; a 401 answer invalidates the
// bound session and is still returned to the caller as *HTTPError.
// It returns ErrSessionNotBound when BindSession was never called.
func (c *Client) PrivateRequest(ctx context.Context, method, path string, body any, header http.Header) (*Response, error) {
	b := c.session.Load()
	if b == nil {
		return nil, ErrSessionNotBound
	}
	return c.do(withSessionSource(ctx, b.src), surfacePrivate, c.private, method, path, body, header)
}

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.public != nil {
		c.public.CloseIdleConnections()
	}
	if c.private != nil {
		c.private.CloseIdleConnections()
	}
	return nil
}

func (c *Client) do(ctx context.Context, surface string, hc *http.Client, method, path string, body any, header http.Header) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, apierrors.NewNetworkError(method, path, err)
	}
	req, err := c.newRequest(ctx, method, path, body, header)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		observeRequest(surface, "error", time.Since(start))
		return nil, apierrors.NewNetworkError(method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	observeRequest(surface, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		return nil, apierrors.NewNetworkError(method, path, fmt.Errorf("read body: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierrors.NewHTTPError(method, path, resp.StatusCode, data)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, header http.Header) (*http.Request, error) {
	if method == "" {
		method = http.MethodGet
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: encode body: %w", method, path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// encodeBody sends []byte and json.RawMessage verbatim, streams io.Reader,
// and JSON-encodes anything else.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(b), "application/json", nil
	case json.RawMessage:
		return bytes.NewReader(b), "application/json", nil
	case io.Reader:
		return b, "", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
