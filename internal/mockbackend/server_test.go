package mockbackend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/session"
)

type harness struct {
	backend *Server
	client  *client.Client
	store   *session.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	backend := New()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, http.Header{client.APIKeyHeader: {DefaultAPIKey}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	store := session.NewStore()
	c.BindSession(store)
	return &harness{backend: backend, client: c, store: store}
}

func (h *harness) login(t *testing.T) string {
	t.Helper()
	resp, err := h.client.Login(context.Background(), client.LoginRequest{Email: DefaultEmail, Password: DefaultPassword})
	require.NoError(t, err)
	_, err = h.store.Login(context.Background(), resp.Token)
	require.NoError(t, err)
	return resp.Token
}

func TestHealthNeedsNoKey(t *testing.T) {
	srv := httptest.NewServer(New().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIKeyRequired(t *testing.T) {
	backend := New()
	srv := httptest.NewServer(backend.Handler())
	defer srv.Close()

	c, err := client.New(srv.URL, http.Header{client.APIKeyHeader: {"wrong"}})
	require.NoError(t, err)
	_, err = c.Login(context.Background(), client.LoginRequest{Email: DefaultEmail, Password: DefaultPassword})
	assert.Equal(t, http.StatusForbidden, client.StatusCode(err))
}

func TestLoginRejectsBadPassword(t *testing.T) {
	h := newHarness(t)
	_, err := h.client.Login(context.Background(), client.LoginRequest{Email: DefaultEmail, Password: "nope"})
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(err))
	assert.Equal(t, 0, h.backend.ActiveTokens())
}

func TestPrivateWithoutLoginIs401(t *testing.T) {
	h := newHarness(t)
	_, err := h.client.ListOrders(context.Background(), client.OrderFilter{})
	assert.True(t, client.IsUnauthorized(err))
}

func TestLoginTokenIsDecodableJWT(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	claims, err := h.store.Claims()
	require.NoError(t, err)
	assert.Equal(t, DefaultEmail, claims.Email)
	require.NotNil(t, claims.ExpiresAt)
}

func TestExpireTriggersSessionInvalidation(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	var events []session.Event
	h.store.OnInvalidate(func(ev session.Event) { events = append(events, ev) })

	_, err := h.client.ListOrders(context.Background(), client.OrderFilter{})
	require.NoError(t, err)

	require.True(t, h.backend.Expire(token))
	_, err = h.client.ListOrders(context.Background(), client.OrderFilter{})
	require.True(t, client.IsUnauthorized(err))

	_, ok := h.store.Token()
	assert.False(t, ok, "401 must clear the session")
	require.Len(t, events, 1)
	assert.Equal(t, session.ReasonUnauthorized, events[0].Reason)

	// next call goes out without a credential and fails at the server again
	_, err = h.client.ListOrders(context.Background(), client.OrderFilter{})
	assert.True(t, client.IsUnauthorized(err))
	assert.Len(t, events, 1)

	// logging in again restores access
	h.login(t)
	_, err = h.client.ListOrders(context.Background(), client.OrderFilter{})
	assert.NoError(t, err)
}

func TestOrders(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	page, err := h.client.ListOrders(ctx, client.OrderFilter{Page: 1, PerPage: 5})
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	require.NotNil(t, page.Pagination)
	assert.Equal(t, 12, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)

	all, err := h.client.ListOrders(ctx, client.OrderFilter{Status: "all", PerPage: 50})
	require.NoError(t, err)
	stats := client.SummarizeOrders(all.Data)
	assert.Equal(t, client.OrderStats{Total: 12, Completed: 2, Cancelled: 2, Returned: 2}, stats)

	delivered, err := h.client.ListOrders(ctx, client.OrderFilter{Status: client.OrderDelivered})
	require.NoError(t, err)
	for _, o := range delivered.Data {
		assert.Equal(t, client.OrderDelivered, o.Status)
	}

	searched, err := h.client.ListOrders(ctx, client.OrderFilter{Search: "ORD-01001"})
	require.NoError(t, err)
	require.Len(t, searched.Data, 1)
}

func TestCustomers(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	users, err := h.client.ListUsers(ctx, client.UserFilter{PerPage: 50})
	require.NoError(t, err)
	require.Len(t, users.Data, 6)
	first := users.Data[0]

	cust, err := h.client.GetCustomer(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Email, cust.Email)

	orders, err := h.client.ListCustomerOrders(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	require.NoError(t, h.client.BulkUpdateUserStatus(ctx, []string{first.ID}, client.UserInactive))
	inactive, err := h.client.ListUsers(ctx, client.UserFilter{Status: client.UserInactive, PerPage: 50})
	require.NoError(t, err)
	assert.Len(t, inactive.Data, 2)

	require.NoError(t, h.client.BulkDeleteUsers(ctx, []string{first.ID}))
	_, err = h.client.GetCustomer(ctx, first.ID)
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))
}

func TestProducts(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	pending, err := h.client.ListProducts(ctx, client.ProductFilter{Status: client.ProductPending, PerPage: 50})
	require.NoError(t, err)
	require.NotEmpty(t, pending.Data)
	id := pending.Data[0].ID

	require.NoError(t, h.client.ApproveProduct(ctx, id))
	p, err := h.client.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, client.ProductApproved, p.Status)

	require.NoError(t, h.client.RejectProduct(ctx, id, "Missing size chart"))
	p, err = h.client.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, client.ProductRejected, p.Status)
	assert.Equal(t, "Missing size chart", p.RejectionReasons)

	require.NoError(t, h.client.BulkUpdateProductStatus(ctx, []string{id}, client.ProductPending))
	require.NoError(t, h.client.BulkDeleteProducts(ctx, []string{id}))
	_, err = h.client.GetProduct(ctx, id)
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))

	all, err := h.client.ListProducts(ctx, client.ProductFilter{PerPage: 50})
	require.NoError(t, err)
	assert.Len(t, all.Data, 11)
}

func TestVendors(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	page, err := h.client.ListVendors(ctx, client.VendorFilter{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	require.NotNil(t, page.Pagination)
	assert.Equal(t, 4, page.Pagination.TotalItems)
	assert.True(t, page.Pagination.HasNextPage)

	all, err := h.client.ListVendors(ctx, client.VendorFilter{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, client.VendorStats{Pending: 1, Submitted: 1, Approved: 1, Rejected: 1}, client.SummarizeVendors(all.Data))

	var pendingID string
	for _, v := range all.Data {
		if v.VerificationStatus == client.VendorPending {
			pendingID = v.ID
		}
	}
	require.NotEmpty(t, pendingID)

	require.NoError(t, h.client.ApproveVendor(ctx, pendingID))
	v, err := h.client.GetVendor(ctx, pendingID)
	require.NoError(t, err)
	assert.Equal(t, client.VendorApproved, v.VerificationStatus)

	require.NoError(t, h.client.RejectVendor(ctx, pendingID))
	require.NoError(t, h.client.SaveVendorNotes(ctx, pendingID, "GST certificate expired"))
	assert.Equal(t, "GST certificate expired", h.backend.VendorNotes(pendingID))

	err = h.client.ApproveVendor(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))
}

func TestPrivateRouteRejectsMissingCredential(t *testing.T) {
	backend := New()
	router := backend.Handler()
	req := httptest.NewRequest(http.MethodPatch, "/admin/products/x/reject", http.NoBody)
	req.Header.Set(client.APIKeyHeader, DefaultAPIKey)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	// no credential: rejected before the handler runs
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
