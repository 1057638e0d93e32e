// Package app wires configuration, the session store and the API client
// the way both binaries need them.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/internal/config"
	"github.com/PSchristopher/phoenix-admin/session"
)

// App bundles the long-lived collaborators of a process.
type App struct {
	Config *config.Config
	Client *client.Client
	Store  *session.Store
	Log    zerolog.Logger

	closers []func() error
}

// NewPersister selects the session persister based on cfg.SessionStore.
// The returned closer releases backend connections and is never nil.
func NewPersister(cfg *config.Config) (session.Persister, func() error, error) {
	noop := func() error { return nil }
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		return nil, noop, nil
	case config.SessionStoreFile:
		return session.NewFilePersister(cfg.SessionFile), noop, nil
	case config.SessionStoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return session.NewRedisPersister(rdb, cfg.RedisKey, cfg.SessionTTL), rdb.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown SESSION_STORE: %s", cfg.SessionStore)
	}
}

// New builds the store, restores any persisted session, and returns a client
// bound to it. Extra client options are applied after the configured ones.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...client.Option) (*App, error) {
	persister, closePersister, err := NewPersister(cfg)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Log: log, closers: []func() error{closePersister}}

	a.Store = session.NewStore(session.WithPersister(persister), session.WithLogger(log))
	found, err := a.Store.Restore(ctx)
	if err != nil {
		// A broken session record must not block login.
		log.Warn().Err(err).Msg("ignoring unreadable session")
	}

	clientOpts := []client.Option{
		client.WithHTTPTimeout(cfg.HTTPTimeout),
		client.WithDebugLogging(cfg.Debug),
	}
	if cfg.APIKey != "" {
		clientOpts = append(clientOpts, client.WithAPIKey(cfg.APIKey))
	}
	clientOpts = append(clientOpts, opts...)

	c, err := client.New(cfg.BackendURL, http.Header{}, clientOpts...)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("build client: %w", err)
	}
	c.BindSession(a.Store)
	a.Client = c
	a.closers = append(a.closers, c.Close)

	a.Store.OnInvalidate(func(ev session.Event) {
		if ev.Reason == session.ReasonUnauthorized {
			log.Warn().Str("session_id", ev.RecordID).Msg("session expired; log in again")
		}
	})

	log.Debug().
		Str("backend_url", c.BaseURL()).
		Str("session_store", cfg.SessionStore).
		Bool("session_restored", found).
		Msg("admin client ready")
	return a, nil
}

// Close releases the client and persister connections in reverse order.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
