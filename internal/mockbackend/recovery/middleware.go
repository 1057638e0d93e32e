// Package recovery turns handler panics into JSON 500 responses.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/PSchristopher/phoenix-admin/internal/mockbackend/respond"
)

// Middleware recovers panics raised by next, logs them with the route and
// stack, and answers with the mock backend's standard error body.
func Middleware(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				log.Error().
					Interface("panic", rec).
					Str("route", r.Method+" "+r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")
				respond.WriteError(w, http.StatusInternalServerError, "unexpected server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
