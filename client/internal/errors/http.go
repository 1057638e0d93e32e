package errors

import "net/http"

// categoryForStatus maps HTTP status codes to error categories:
// - 4xx client errors (except 408 and 429) are irrecoverable
// - 5xx server errors are recoverable
func categoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			// 400 Bad Request, 401 Unauthorized, 403 Forbidden, 404 Not Found, etc.
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected status codes - be conservative
		return Recoverable
	}
}

// NewHTTPError builds an *HTTPError for a received non-2xx response.
func NewHTTPError(method, path string, statusCode int, body []byte) *HTTPError {
	return &HTTPError{Method: method, Path: path, StatusCode: statusCode, Body: body}
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(method, path string, err error) *NetworkError {
	return &NetworkError{Method: method, Path: path, Err: err}
}
