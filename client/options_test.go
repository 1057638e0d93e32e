package client

import (
	"context"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func okResponse(r *http.Request) *http.Response {
	return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header), Request: r}
}

func TestWithHTTPTimeoutAndDebugLogging(t *testing.T) {
	c, err := New("http://example.com", nil, WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.public.Timeout != 5*time.Second || c.private.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set on both surfaces")
	}

	// debug logging wraps the base transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return okResponse(r), nil
	})
	c2, err := New("http://example.com", nil, WithTransport(rt), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ht, ok := c2.public.Transport.(*headerTransport)
	if !ok {
		t.Fatalf("public transport is %T, want *headerTransport", c2.public.Transport)
	}
	if _, ok := ht.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport under the header transport, got %T", ht.base)
	}

	if _, err := c2.PublicRequest(context.Background(), http.MethodGet, "/health", nil, nil); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestOptionValidation(t *testing.T) {
	cases := map[string]Option{
		"zero timeout":  WithHTTPTimeout(0),
		"nil transport": WithTransport(nil),
		"empty api key": WithAPIKey(""),
	}
	for name, opt := range cases {
		if _, err := New("http://example.com", nil, opt); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestWithAPIKeyOverridesDefaultHeader(t *testing.T) {
	c, err := New("http://example.com", http.Header{"X-Api-Key": {"old"}}, WithAPIKey("new"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.header.Values(APIKeyHeader); len(got) != 1 || got[0] != "new" {
		t.Fatalf("api key header = %v, want [new]", got)
	}
}
