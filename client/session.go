package client

import "context"

// SessionSource is the narrow view the client has of the application's
// session holder. Token is read on every private request; InvalidateSession
// is called once per 401 response and may therefore run several times for
// concurrent failures, so it must be idempotent and goroutine-safe.
type SessionSource interface {
	Token() (string, bool)
	InvalidateSession()
}

// SessionFuncs adapts a getter and an invalidation callback to SessionSource.
type SessionFuncs struct {
	TokenFunc      func() (string, bool)
	InvalidateFunc func()
}

// Token implements SessionSource.
func (f SessionFuncs) Token() (string, bool) {
	if f.TokenFunc == nil {
		return "", false
	}
	return f.TokenFunc()
}

// InvalidateSession implements SessionSource.
func (f SessionFuncs) InvalidateSession() {
	if f.InvalidateFunc != nil {
		f.InvalidateFunc()
	}
}

type sessionKey struct{}

// withSessionSource pins the source for one request so that header injection
// and 401 handling talk to the same holder even if BindSession runs mid-flight.
func withSessionSource(ctx context.Context, src SessionSource) context.Context {
	return context.WithValue(ctx, sessionKey{}, src)
}

func sessionSourceFrom(ctx context.Context) SessionSource {
	src, _ := ctx.Value(sessionKey{}).(SessionSource)
	return src
}
