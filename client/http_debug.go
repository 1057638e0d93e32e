package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// When to use:
//   - Set PHOENIX_DEBUG=true or DEBUG=true environment variable
//   - Pass WithDebugLogging(true) or --debug on the CLI
//   - When investigating backend issues (temporarily, with log level controls)
//
// Security considerations:
//   - The bearer credential is redacted, but bodies (including login
//     passwords) are logged as-is
//   - Only enable in development/staging environments
//
// Example usage:
//
//	export PHOENIX_DEBUG=true
//	phoenix-admin orders list  # Client will now log all HTTP traffic
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := dumpRedacted(req); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// dumpRedacted dumps a copy of req with the credential masked. The body is
// included only when it can be replayed through GetBody, so the original
// request body is never consumed.
func dumpRedacted(req *http.Request) ([]byte, error) {
	clone := req.Clone(req.Context())
	if clone.Header.Get("Authorization") != "" {
		clone.Header.Set("Authorization", "Bearer [redacted]")
	}
	withBody := false
	if req.Body != nil && req.Body != http.NoBody && req.GetBody != nil {
		if b, err := req.GetBody(); err == nil {
			clone.Body = b
			withBody = true
		}
	}
	if !withBody {
		clone.Body = nil
	}
	return httputil.DumpRequestOut(clone, withBody)
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - PHOENIX_DEBUG=true (project-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("PHOENIX_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
