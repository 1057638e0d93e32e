package client

import (
	"net/http"
	"net/url"
	"strings"
)

// origin is the scheme and host of the base URL. Default headers and the
// session credential are only sent to it; redirect hops elsewhere get
// neither.
type origin struct {
	scheme string
	host   string
}

func originOf(baseURL string) origin {
	u, err := url.Parse(baseURL)
	if err != nil {
		return origin{}
	}
	return origin{scheme: strings.ToLower(u.Scheme), host: strings.ToLower(u.Host)}
}

func (o origin) matches(u *url.URL) bool {
	return o.host != "" && strings.EqualFold(u.Scheme, o.scheme) && strings.EqualFold(u.Host, o.host)
}

// headerTransport adds the client's default headers (the API key) unless
// the request already carries a value for that key.
type headerTransport struct {
	base   http.RoundTripper
	header http.Header
	origin origin
}

func withDefaultHeaders(base http.RoundTripper, header http.Header, o origin) http.RoundTripper {
	return &headerTransport{base: base, header: header, origin: o}
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.origin.matches(req.URL) {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	for k, vs := range t.header {
		if _, ok := cloned.Header[k]; ok {
			continue
		}
		for _, v := range vs {
			cloned.Header.Add(k, v)
		}
	}
	return t.base.RoundTrip(cloned)
}

// authTransport sets the bearer credential from the request's session source
// at send time. Without a credential, or on a hop away from the base URL's
// origin, any Authorization header is dropped.
type authTransport struct {
	base   http.RoundTripper
	origin origin
}

func withAuth(base http.RoundTripper, o origin) http.RoundTripper {
	return &authTransport{base: base, origin: o}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	token, ok := "", false
	if src := sessionSourceFrom(req.Context()); src != nil && t.origin.matches(req.URL) {
		token, ok = src.Token()
	}
	if ok && token != "" {
		cloned.Header.Set("Authorization", "Bearer "+token)
	} else {
		cloned.Header.Del("Authorization")
	}
	return t.base.RoundTrip(cloned)
}

// sessionInvalidationTransport reports 401 answers to the session source.
// The response itself is passed through untouched; there is no retry.
type sessionInvalidationTransport struct {
	base http.RoundTripper
}

func withSessionInvalidation(base http.RoundTripper) http.RoundTripper {
	return &sessionInvalidationTransport{base: base}
}

func (t *sessionInvalidationTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		if src := sessionSourceFrom(req.Context()); src != nil {
			sessionInvalidationsTotal.Inc()
			src.InvalidateSession()
		}
	}
	return resp, nil
}
