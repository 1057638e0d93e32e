package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("PHOENIX_DEBUG", "true")
	c, err := New("http://example.com", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.debug {
		t.Fatalf("expected debug transport to be installed when PHOENIX_DEBUG=true")
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	// base transport returns error
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	dt := &debugTransport{base: rt}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := dt.RoundTrip(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}

func TestDumpRedacted_MasksBearerAndKeepsBody(t *testing.T) {
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "http://example.com/admin/login", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set("Authorization", "Bearer secret-token")

	dump, err := dumpRedacted(req)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	s := string(dump)
	if strings.Contains(s, "secret-token") {
		t.Fatalf("credential leaked into dump: %s", s)
	}
	if !strings.Contains(s, "Bearer [redacted]") || !strings.Contains(s, `"email":"a@b.c"`) {
		t.Fatalf("unexpected dump: %s", s)
	}
	if req.Header.Get("Authorization") != "Bearer secret-token" {
		t.Fatalf("original request header was modified")
	}
}
