package api

import (
	"context"
	"errors"
	"testing"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

func TestListProducts_Query(t *testing.T) {
	t.Parallel()
	r := &stubRequester{body: `{"success":true,"data":[{"id":"p1","product_name":"Lamp","status":"pending"}]}`}
	page, err := ListProducts(context.Background(), r, types.ProductFilter{Status: "pending", Stock: "low", Page: 1, PerPage: 25})
	if err != nil || len(page.Data) != 1 || page.Data[0].ProductName != "Lamp" {
		t.Fatalf("ListProducts: page=%+v err=%v", page, err)
	}
	if p := r.last().path; p != "/admin/products?page=1&perPage=25&status=pending&stock=low" {
		t.Fatalf("unexpected path %s", p)
	}
}

func TestGetProduct_BareAndEnvelope(t *testing.T) {
	t.Parallel()
	bare := &stubRequester{body: `{"id":"p1","product_name":"Lamp","status":"rejected","rejection_reasons":"blurry photos"}`}
	p, err := GetProduct(context.Background(), bare, "p1")
	if err != nil || p.ID != "p1" || p.RejectionReasons != "blurry photos" {
		t.Fatalf("bare: p=%+v err=%v", p, err)
	}
	if got := bare.last().path; got != "/admin/products/p1" {
		t.Fatalf("path %s", got)
	}

	wrapped := &stubRequester{body: `{"success":true,"data":{"id":"p2","product_name":"Desk"}}`}
	p, err = GetProduct(context.Background(), wrapped, "p2")
	if err != nil || p.ID != "p2" || p.ProductName != "Desk" {
		t.Fatalf("envelope: p=%+v err=%v", p, err)
	}
}

func TestApproveRejectProduct(t *testing.T) {
	t.Parallel()
	r := &stubRequester{body: `{"success":true}`}
	if err := ApproveProduct(context.Background(), r, "p1"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if c := r.last(); c.method != "PATCH" || c.path != "/admin/products/p1/approve" || c.body != nil {
		t.Fatalf("approve call: %+v", c)
	}

	if err := RejectProduct(context.Background(), r, "p1", "missing invoice"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	c := r.last()
	if c.method != "PATCH" || c.path != "/admin/products/p1/reject" {
		t.Fatalf("reject call: %+v", c)
	}
	if got := bodyJSON(c.body); got != `{"rejection_reason":"missing invoice"}` {
		t.Fatalf("reject body: %s", got)
	}
}

func TestRejectProduct_RequiresReason(t *testing.T) {
	t.Parallel()
	r := &stubRequester{}
	if err := RejectProduct(context.Background(), r, "p1", "   "); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if r.count() != 0 {
		t.Fatal("request sent despite validation failure")
	}
}

func TestBulkProducts(t *testing.T) {
	t.Parallel()
	r := &stubRequester{body: `{"success":true}`}
	if err := BulkDeleteProducts(context.Background(), r, []string{"p1", "p2"}); err != nil {
		t.Fatalf("bulk delete: %v", err)
	}
	c := r.last()
	if c.method != "DELETE" || c.path != "/admin/products/bulk" || bodyJSON(c.body) != `{"productIds":["p1","p2"]}` {
		t.Fatalf("bulk delete call: %+v %s", c, bodyJSON(c.body))
	}

	if err := BulkUpdateProductStatus(context.Background(), r, []string{"p1"}, types.ProductApproved); err != nil {
		t.Fatalf("bulk status: %v", err)
	}
	c = r.last()
	if c.method != "PUT" || c.path != "/admin/products/bulk/status" || bodyJSON(c.body) != `{"productIds":["p1"],"status":"approved"}` {
		t.Fatalf("bulk status call: %+v %s", c, bodyJSON(c.body))
	}

	if err := BulkDeleteProducts(context.Background(), r, nil); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for empty selection, got %v", err)
	}
	if err := BulkUpdateProductStatus(context.Background(), r, []string{"p1"}, "published"); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for unknown status, got %v", err)
	}
}
