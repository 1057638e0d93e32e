package client

import (
	"github.com/PSchristopher/phoenix-admin/client/internal/api"
	apierrors "github.com/PSchristopher/phoenix-admin/client/internal/errors"
	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

// Error types re-exported so callers compare against a single package.
type (
	HTTPError     = apierrors.HTTPError
	NetworkError  = apierrors.NetworkError
	ErrorCategory = apierrors.ErrorCategory
)

const (
	Recoverable   = apierrors.Recoverable
	Irrecoverable = apierrors.Irrecoverable
)

var (
	// ErrSessionNotBound is returned by PrivateRequest before BindSession.
	ErrSessionNotBound = apierrors.ErrSessionNotBound
	// ErrInvalidArgument wraps client-side validation failures.
	ErrInvalidArgument = types.ErrInvalidArgument
	// ErrNoToken is returned by Login when the backend issued no credential.
	ErrNoToken = api.ErrNoToken
)

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool { return apierrors.IsUnauthorized(err) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int { return apierrors.StatusCode(err) }
