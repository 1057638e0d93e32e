package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/internal/mockbackend"
)

// setupCLI points the CLI at a fresh mock backend with a file-backed session
// so state survives between separate command invocations.
func setupCLI(t *testing.T) *mockbackend.Server {
	t.Helper()
	backend := mockbackend.New()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	t.Setenv("PHOENIX_BACKEND_URL", srv.URL)
	t.Setenv("PHOENIX_API_KEY", mockbackend.DefaultAPIKey)
	t.Setenv("PHOENIX_SESSION_STORE", "file")
	t.Setenv("PHOENIX_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("PHOENIX_DEBUG", "false")
	return backend
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func login(t *testing.T) {
	t.Helper()
	out, err := run(t, "login", "--email", mockbackend.DefaultEmail, "--password", mockbackend.DefaultPassword)
	require.NoError(t, err, out)
	require.Contains(t, out, "session_id")
}

func TestCLI_LoginWhoamiLogout(t *testing.T) {
	setupCLI(t)
	login(t)

	out, err := run(t, "whoami")
	require.NoError(t, err)
	var who struct {
		SessionID string `json:"session_id"`
		Claims    struct {
			Email string `json:"email"`
		} `json:"claims"`
		Expired bool `json:"expired"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &who))
	assert.NotEmpty(t, who.SessionID)
	assert.Equal(t, mockbackend.DefaultEmail, who.Claims.Email)
	assert.False(t, who.Expired)

	out, err = run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	_, err = run(t, "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")

	_, err = run(t, "orders", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, errSessionExpired)
}

func TestCLI_LoginBadPassword(t *testing.T) {
	setupCLI(t)
	_, err := run(t, "login", "--email", mockbackend.DefaultEmail, "--password", "wrong")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errSessionExpired)
}

func TestCLI_OrdersAndProducts(t *testing.T) {
	setupCLI(t)
	login(t)

	out, err := run(t, "orders", "list", "--summary")
	require.NoError(t, err)
	var stats client.OrderStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Positive(t, stats.Total)

	out, err = run(t, "products", "list", "--status", client.ProductPending)
	require.NoError(t, err)
	var products client.ProductsPage
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.NotEmpty(t, products.Data)
	id := products.Data[0].ID

	out, err = run(t, "products", "approve", "--product-id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "approved")

	out, err = run(t, "products", "get", "--product-id", id)
	require.NoError(t, err)
	var p client.Product
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, client.ProductApproved, p.Status)
}

func TestCLI_VendorNotes(t *testing.T) {
	backend := setupCLI(t)
	login(t)

	out, err := run(t, "vendors", "list")
	require.NoError(t, err)
	var vendors client.VendorsPage
	require.NoError(t, json.Unmarshal([]byte(out), &vendors))
	require.NotEmpty(t, vendors.Data)
	id := vendors.Data[0].ID

	_, err = run(t, "vendors", "notes", "--vendor-id", id, "--notes", "called the owner")
	require.NoError(t, err)
	assert.Equal(t, "called the owner", backend.VendorNotes(id))
}

func TestCLI_ExpiredSessionIsCleared(t *testing.T) {
	backend := setupCLI(t)
	login(t)
	backend.ExpireAll()

	_, err := run(t, "customers", "list")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "session expired, run login"), err.Error())

	// the 401 removed the persisted credential
	_, err = run(t, "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestCLI_Wait(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "wait", "--timeout", "2s")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend ready")
}

func TestCLI_RequiredFlags(t *testing.T) {
	setupCLI(t)
	_, err := run(t, "products", "reject", "--product-id", "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reason")
}
