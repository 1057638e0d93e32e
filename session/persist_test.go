package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersister(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	p := NewFilePersister(path)

	rec, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)

	want := Record{ID: "r1", Token: "abc123", CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	require.NoError(t, p.Save(ctx, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := p.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Token, got.Token)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, p.Clear(ctx))
	require.NoError(t, p.Clear(ctx))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files left behind")
}

func TestFilePersisterCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := NewFilePersister(path).Load(context.Background())
	assert.Error(t, err)
}

func newRedisPersisterTest(t *testing.T, ttl time.Duration) (*RedisPersister, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return NewRedisPersister(rdb, "phoenix-admin:session", ttl), mr
}

func TestRedisPersister(t *testing.T) {
	ctx := context.Background()
	p, mr := newRedisPersisterTest(t, time.Hour)

	rec, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, p.Save(ctx, Record{ID: "r1", Token: "abc123"}))
	assert.Equal(t, time.Hour, mr.TTL("phoenix-admin:session"))

	got, err := p.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc123", got.Token)

	require.NoError(t, p.Clear(ctx))
	require.NoError(t, p.Clear(ctx))
	assert.False(t, mr.Exists("phoenix-admin:session"))
}

func TestRedisPersisterExpiry(t *testing.T) {
	ctx := context.Background()
	p, mr := newRedisPersisterTest(t, time.Minute)
	require.NoError(t, p.Save(ctx, Record{ID: "r1", Token: "abc123"}))

	mr.FastForward(2 * time.Minute)
	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreWithRedisSharesSession(t *testing.T) {
	ctx := context.Background()
	p, _ := newRedisPersisterTest(t, time.Hour)

	cli := NewStore(WithPersister(p))
	_, err := cli.Login(ctx, "shared")
	require.NoError(t, err)

	mcp := NewStore(WithPersister(p))
	found, err := mcp.Restore(ctx)
	require.NoError(t, err)
	require.True(t, found)

	// a 401 seen by one tool clears the shared record
	mcp.InvalidateSession()
	other := NewStore(WithPersister(p))
	found, err = other.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisPersisterUnavailable(t *testing.T) {
	p, mr := newRedisPersisterTest(t, 0)
	mr.Close()
	err := p.Save(context.Background(), Record{Token: "x"})
	assert.ErrorIs(t, err, ErrRedisUnavailable)
}
