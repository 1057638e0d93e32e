package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

// call records one request seen by stubRequester.
type call struct {
	surface string
	method  string
	path    string
	body    any
}

// stubRequester answers every request with a canned body or error and
// records what it was asked.
type stubRequester struct {
	mu    sync.Mutex
	calls []call
	body  string
	err   error
}

func (s *stubRequester) PublicRequest(ctx context.Context, method, path string, body any, _ http.Header) (*types.Response, error) {
	return s.record("public", method, path, body)
}

func (s *stubRequester) PrivateRequest(ctx context.Context, method, path string, body any, _ http.Header) (*types.Response, error) {
	return s.record("private", method, path, body)
}

func (s *stubRequester) record(surface, method, path string, body any) (*types.Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, call{surface: surface, method: method, path: path, body: body})
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &types.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte(s.body)}, nil
}

func (s *stubRequester) last() call {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return call{}
	}
	return s.calls[len(s.calls)-1]
}

func (s *stubRequester) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// bodyJSON re-encodes a recorded body for comparison.
func bodyJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return string(b)
}
