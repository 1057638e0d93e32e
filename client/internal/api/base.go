package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

// Requester is the two-surface transport the endpoint helpers run on.
// *client.Client satisfies it.
type Requester interface {
	PublicRequest(ctx context.Context, method, path string, body any, header http.Header) (*types.Response, error)
	PrivateRequest(ctx context.Context, method, path string, body any, header http.Header) (*types.Response, error)
}

// resourcePath joins escaped segments under a leading slash.
func resourcePath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}

// withQuery appends q to path when it is non-empty.
func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// decodeInto decodes a successful response and prefixes failures with op.
func decodeInto(op string, resp *types.Response, v any) error {
	if err := resp.Decode(v); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}
	return nil
}

// mutate issues a private mutation whose body is ignored on success.
func mutate(ctx context.Context, r Requester, op, method, path string, body any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.PrivateRequest(ctx, method, path, body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
