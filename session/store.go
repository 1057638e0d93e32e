package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrEmptyToken is returned by Login for a blank credential.
var ErrEmptyToken = errors.New("session: empty token")

// persistTimeout bounds persistence calls made from InvalidateSession,
// which has no caller context.
const persistTimeout = 5 * time.Second

// Persister stores at most one session record.
type Persister interface {
	Save(ctx context.Context, rec Record) error
	// Load returns nil, nil when nothing is stored.
	Load(ctx context.Context) (*Record, error)
	// Clear is a no-op when nothing is stored.
	Clear(ctx context.Context) error
}

// Store owns the current credential. All methods are safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	rec       *Record
	listeners []func(Event)

	// writeMu orders state changes with their persistence so the stored
	// record always matches memory. Token reads never take it.
	writeMu sync.Mutex

	persister Persister
	log       zerolog.Logger
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithPersister makes the session survive restarts.
func WithPersister(p Persister) Option { return func(s *Store) { s.persister = p } }

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(l zerolog.Logger) Option { return func(s *Store) { s.log = l } }

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login makes token the current credential and persists it. A previous
// session is replaced without notifying listeners.
func (s *Store) Login(ctx context.Context, token string) (*Record, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}
	rec := Record{ID: uuid.NewString(), Token: token, CreatedAt: s.now().UTC()}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.persister != nil {
		if err := s.persister.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("session: persist: %w", err)
		}
	}

	s.mu.Lock()
	s.rec = &rec
	s.mu.Unlock()

	s.log.Info().Str("session_id", rec.ID).Msg("session started")
	out := rec
	return &out, nil
}

// Token returns the current credential.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil {
		return "", false
	}
	return s.rec.Token, true
}

// Current returns a copy of the current record, or nil.
func (s *Store) Current() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil {
		return nil
	}
	out := *s.rec
	return &out
}

// InvalidateSession clears the credential after a 401. Only the call that
// finds a session present has any effect; concurrent and repeated calls are
// no-ops.
func (s *Store) InvalidateSession() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.end(ctx, ReasonUnauthorized); err != nil {
		s.log.Error().Stack().Err(err).Msg("failed to clear persisted session")
	}
}

// Logout ends the session explicitly. Logging out without a session is not
// an error.
func (s *Store) Logout(ctx context.Context) error {
	return s.end(ctx, ReasonLogout)
}

func (s *Store) end(ctx context.Context, reason Reason) error {
	rec, listeners, err := s.clear(ctx)
	if rec == nil {
		return nil
	}

	s.log.Info().Str("session_id", rec.ID).Str("reason", string(reason)).Msg("session ended")
	ev := Event{RecordID: rec.ID, Reason: reason, At: s.now().UTC()}
	for _, fn := range listeners {
		fn(ev)
	}
	return err
}

// clear drops the current record and its persisted copy under writeMu.
// Listeners are returned so they can run after the lock is released.
func (s *Store) clear(ctx context.Context) (*Record, []func(Event), error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	rec := s.rec
	s.rec = nil
	listeners := append([]func(Event)(nil), s.listeners...)
	s.mu.Unlock()

	if rec == nil || s.persister == nil {
		return rec, listeners, nil
	}
	if err := s.persister.Clear(ctx); err != nil {
		return rec, listeners, fmt.Errorf("session: clear: %w", err)
	}
	return rec, listeners, nil
}

// Restore loads a persisted session. It reports whether one was found.
func (s *Store) Restore(ctx context.Context) (bool, error) {
	if s.persister == nil {
		return false, nil
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	rec, err := s.persister.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("session: restore: %w", err)
	}
	if rec == nil || strings.TrimSpace(rec.Token) == "" {
		return false, nil
	}

	s.mu.Lock()
	s.rec = rec
	s.mu.Unlock()

	s.log.Debug().Str("session_id", rec.ID).Msg("session restored")
	return true, nil
}

// OnInvalidate registers fn to run after a session ends. Listeners run
// outside the store lock, on the goroutine that ended the session.
func (s *Store) OnInvalidate(fn func(Event)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}
