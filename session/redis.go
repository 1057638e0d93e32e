package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps connection failures to the session redis.
var ErrRedisUnavailable = errors.New("redis unavailable")

// RedisPersister keeps the record under one key with an expiry, so a
// session shared by several admin tools ends on its own.
type RedisPersister struct {
	rdb redis.UniversalClient
	key string
	ttl time.Duration
}

// NewRedisPersister stores the record at key. ttl <= 0 disables expiry.
func NewRedisPersister(rdb redis.UniversalClient, key string, ttl time.Duration) *RedisPersister {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisPersister{rdb: rdb, key: key, ttl: ttl}
}

// Save implements Persister.
func (p *RedisPersister) Save(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := p.rdb.Set(ctx, p.key, data, p.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Load implements Persister.
func (p *RedisPersister) Load(ctx context.Context) (*Record, error) {
	data, err := p.rdb.Get(ctx, p.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.key, err)
	}
	return &rec, nil
}

// Clear implements Persister. Deleting a missing key is a no-op.
func (p *RedisPersister) Clear(ctx context.Context) error {
	if err := p.rdb.Del(ctx, p.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
