package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/internal/config"
	"github.com/PSchristopher/phoenix-admin/internal/mockbackend"
	"github.com/PSchristopher/phoenix-admin/session"
)

func testConfig(t *testing.T, backendURL string) *config.Config {
	t.Helper()
	cfg := config.NewForTesting()
	cfg.BackendURL = backendURL
	cfg.APIKey = mockbackend.DefaultAPIKey
	return cfg
}

func TestNew_MemoryStoreEndToEnd(t *testing.T) {
	backend := mockbackend.New()
	srv := httptest.NewServer(backend.Handler())
	defer srv.Close()

	a, err := New(context.Background(), testConfig(t, srv.URL), zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	resp, err := a.Client.Login(ctx, client.LoginRequest{Email: mockbackend.DefaultEmail, Password: mockbackend.DefaultPassword})
	require.NoError(t, err)
	_, err = a.Store.Login(ctx, resp.Token)
	require.NoError(t, err)

	_, err = a.Client.ListVendors(ctx, client.VendorFilter{})
	require.NoError(t, err)

	backend.ExpireAll()
	_, err = a.Client.ListVendors(ctx, client.VendorFilter{})
	assert.True(t, client.IsUnauthorized(err))
	assert.Nil(t, a.Store.Current())
}

func TestNew_FileStoreRestoresAcrossProcesses(t *testing.T) {
	backend := mockbackend.New()
	srv := httptest.NewServer(backend.Handler())
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	cfg.SessionStore = config.SessionStoreFile
	cfg.SessionFile = filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	resp, err := first.Client.Login(ctx, client.LoginRequest{Email: mockbackend.DefaultEmail, Password: mockbackend.DefaultPassword})
	require.NoError(t, err)
	_, err = first.Store.Login(ctx, resp.Token)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer second.Close()
	tok, ok := second.Store.Token()
	require.True(t, ok)
	assert.Equal(t, resp.Token, tok)

	_, err = second.Client.ListOrders(ctx, client.OrderFilter{})
	assert.NoError(t, err)
}

func TestNewPersister(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.NewForTesting()
	p, closer, err := NewPersister(cfg)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, closer())

	cfg.SessionStore = config.SessionStoreFile
	cfg.SessionFile = filepath.Join(t.TempDir(), "s.json")
	p, _, err = NewPersister(cfg)
	require.NoError(t, err)
	assert.IsType(t, &session.FilePersister{}, p)

	cfg.SessionStore = config.SessionStoreRedis
	cfg.RedisAddr = mr.Addr()
	p, closer, err = NewPersister(cfg)
	require.NoError(t, err)
	assert.IsType(t, &session.RedisPersister{}, p)
	require.NoError(t, p.Save(context.Background(), session.Record{ID: "r", Token: "t"}))
	assert.True(t, mr.Exists(cfg.RedisKey))
	assert.NoError(t, closer())

	cfg.SessionStore = "etcd"
	_, _, err = NewPersister(cfg)
	assert.Error(t, err)
}
