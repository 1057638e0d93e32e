// Package probe waits for the admin backend to come up.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/PSchristopher/phoenix-admin/client"
)

// PublicRequester is the slice of *client.Client the probe needs. Probing
// never touches the session.
type PublicRequester interface {
	PublicRequest(ctx context.Context, method, path string, body any, header http.Header) (*client.Response, error)
}

// Config tunes the polling schedule.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultConfig polls quickly at first and settles at two seconds.
func DefaultConfig() Config {
	return Config{InitialInterval: 100 * time.Millisecond, MaxInterval: 2 * time.Second}
}

// WaitReady polls path until the backend answers with any status below 500.
// 4xx counts as ready: the server is up even if it rejects the probe.
// It returns the number of attempts made.
func WaitReady(ctx context.Context, r PublicRequester, path string, maxWait time.Duration) (int, error) {
	return WaitReadyWithConfig(ctx, r, path, maxWait, DefaultConfig())
}

// WaitReadyWithConfig is WaitReady with an explicit schedule.
func WaitReadyWithConfig(ctx context.Context, r PublicRequester, path string, maxWait time.Duration, cfg Config) (int, error) {
	if maxWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, maxWait)
		defer cancel()
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = cfg.InitialInterval
	exp.Multiplier = 2
	exp.MaxInterval = cfg.MaxInterval
	exp.MaxElapsedTime = 0 // bounded by ctx
	exp.Reset()

	attempts := 0
	var lastErr error
	for {
		attempts++
		err := probeOnce(ctx, r, path)
		if err == nil {
			return attempts, nil
		}
		lastErr = err

		timer := time.NewTimer(exp.NextBackOff())
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return attempts, fmt.Errorf("backend not ready after %d attempts: %w", attempts, errors.Join(ctx.Err(), lastErr))
		}
	}
}

func probeOnce(ctx context.Context, r PublicRequester, path string) error {
	_, err := r.PublicRequest(ctx, http.MethodGet, path, nil, nil)
	if err == nil {
		return nil
	}
	if code := client.StatusCode(err); code > 0 && code < 500 {
		return nil
	}
	return err
}
