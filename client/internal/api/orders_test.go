package api

import (
	"context"
	"errors"
	"testing"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

func TestListOrders_Success(t *testing.T) {
	t.Parallel()
	r := &stubRequester{body: `{"success":true,"data":[{"id":"o1","status":"delivered"},{"id":"o2","status":"pending"}],"pagination":{"page":2,"perPage":10,"total":12,"totalPages":2}}`}
	page, err := ListOrders(context.Background(), r, types.OrderFilter{Search: "ana", Status: "all", Page: 2, PerPage: 10})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(page.Data) != 2 || page.Pagination == nil || page.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	got := r.last()
	if got.surface != "private" || got.method != "GET" || got.path != "/admin/orders?page=2&perPage=10&search=ana" {
		t.Fatalf("unexpected call: %+v", got)
	}
}

func TestListOrders_PropagatesError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	r := &stubRequester{err: boom}
	if _, err := ListOrders(context.Background(), r, types.OrderFilter{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestListOrders_DecodeError(t *testing.T) {
	t.Parallel()
	r := &stubRequester{body: `{bad json`}
	if _, err := ListOrders(context.Background(), r, types.OrderFilter{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestListOrders_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &stubRequester{}
	if _, err := ListOrders(ctx, r, types.OrderFilter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if r.count() != 0 {
		t.Fatal("no request expected after cancel")
	}
}

func TestListCustomerOrders_BareArrayAndEnvelope(t *testing.T) {
	t.Parallel()
	bare := &stubRequester{body: `[{"id":"1","orderId":"ORD-1","status":"shipped"}]`}
	list, err := ListCustomerOrders(context.Background(), bare, "cust 7")
	if err != nil || len(list) != 1 || list[0].OrderID != "ORD-1" {
		t.Fatalf("bare array: list=%+v err=%v", list, err)
	}
	if p := bare.last().path; p != "/admin/cust%207/orders" {
		t.Fatalf("path not escaped: %s", p)
	}

	wrapped := &stubRequester{body: `{"success":true,"data":[{"id":"2","orderId":"ORD-2"}]}`}
	list, err = ListCustomerOrders(context.Background(), wrapped, "c1")
	if err != nil || len(list) != 1 || list[0].OrderID != "ORD-2" {
		t.Fatalf("envelope: list=%+v err=%v", list, err)
	}

	empty := &stubRequester{body: `{"success":true}`}
	list, err = ListCustomerOrders(context.Background(), empty, "c1")
	if err != nil || list == nil || len(list) != 0 {
		t.Fatalf("empty envelope: list=%+v err=%v", list, err)
	}
}

func TestListCustomerOrders_RequiresID(t *testing.T) {
	t.Parallel()
	r := &stubRequester{}
	if _, err := ListCustomerOrders(context.Background(), r, ""); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestSummarizeOrders(t *testing.T) {
	t.Parallel()
	stats := SummarizeOrders([]types.Order{
		{Status: types.OrderDelivered},
		{Status: types.OrderDelivered},
		{Status: types.OrderCancelled},
		{Status: types.OrderReturned},
		{Status: types.OrderPending},
	})
	want := types.OrderStats{Total: 5, Completed: 2, Cancelled: 1, Returned: 1}
	if stats != want {
		t.Fatalf("got %+v want %+v", stats, want)
	}
}
