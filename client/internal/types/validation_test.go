package types

import (
	"errors"
	"testing"
)

func TestValidateIDs(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in []string
		ok bool
	}{
		{[]string{"a"}, true}, {[]string{"a", "b"}, true}, {nil, false}, {[]string{}, false}, {[]string{"a", " "}, false},
	}
	for _, c := range cases {
		err := ValidateIDs("product", c.in)
		if c.ok && err != nil {
			t.Fatalf("expected ok for %q, got %v", c.in, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected invalid argument for %q, got %v", c.in, err)
		}
	}
}

func TestValidateStatuses(t *testing.T) {
	t.Parallel()
	if ValidateUserStatus("active") != nil || ValidateUserStatus("inactive") != nil {
		t.Fatal("known user statuses rejected")
	}
	if ValidateUserStatus("banned") == nil {
		t.Fatal("unknown user status accepted")
	}
	if ValidateProductStatus("approved") != nil {
		t.Fatal("approved rejected")
	}
	if ValidateProductStatus("published") == nil {
		t.Fatal("unknown product status accepted")
	}
	if ValidateRejectionReason("  ") == nil {
		t.Fatal("blank reason accepted")
	}
	if ValidateLogin(LoginRequest{Email: "a@b.c"}) == nil {
		t.Fatal("missing password accepted")
	}
}

func TestFilterQueries(t *testing.T) {
	t.Parallel()
	q := OrderFilter{Search: "ana", Status: "all", Page: 2, PerPage: 10}.Query()
	if q.Encode() != "page=2&perPage=10&search=ana" {
		t.Fatalf("order query: %s", q.Encode())
	}
	q = ProductFilter{Status: "pending", Stock: "low"}.Query()
	if q.Encode() != "status=pending&stock=low" {
		t.Fatalf("product query: %s", q.Encode())
	}
	q = UserFilter{Role: "customer", Page: 1, PerPage: 20}.Query()
	if q.Encode() != "page=1&perPage=20&role=customer" {
		t.Fatalf("user query: %s", q.Encode())
	}
	q = VendorFilter{Search: "acme", Page: 1, Limit: 10}.Query()
	if q.Encode() != "limit=10&page=1&search=acme" {
		t.Fatalf("vendor query: %s", q.Encode())
	}
}
