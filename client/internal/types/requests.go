package types

import (
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OrderFilter narrows GET /admin/orders.
type OrderFilter struct {
	Search  string
	Status  string // "all" or empty disables the filter
	Page    int
	PerPage int
}

// Query renders the filter as URL query parameters.
func (f OrderFilter) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" && f.Status != "all" {
		q.Set("status", f.Status)
	}
	setPaging(q, "perPage", f.Page, f.PerPage)
	return q
}

// ProductFilter narrows GET /admin/products.
type ProductFilter struct {
	Search  string
	Status  string
	Stock   string
	Page    int
	PerPage int
}

// Query renders the filter as URL query parameters.
func (f ProductFilter) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Stock != "" {
		q.Set("stock", f.Stock)
	}
	setPaging(q, "perPage", f.Page, f.PerPage)
	return q
}

// UserFilter narrows GET /user.
type UserFilter struct {
	Search  string
	Status  string
	Role    string
	Page    int
	PerPage int
}

// Query renders the filter as URL query parameters.
func (f UserFilter) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Role != "" {
		q.Set("role", f.Role)
	}
	setPaging(q, "perPage", f.Page, f.PerPage)
	return q
}

// VendorFilter narrows GET /admin/vendors. The vendor endpoint pages with
// "limit" instead of "perPage".
type VendorFilter struct {
	Search string
	Page   int
	Limit  int
}

// Query renders the filter as URL query parameters.
func (f VendorFilter) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	setPaging(q, "limit", f.Page, f.Limit)
	return q
}

func setPaging(q url.Values, sizeKey string, page, size int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		q.Set(sizeKey, strconv.Itoa(size))
	}
}

// RejectProductRequest is the body of PATCH /admin/products/{id}/reject.
type RejectProductRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

// BulkProductsRequest targets several products at once.
type BulkProductsRequest struct {
	ProductIDs []string `json:"productIds"`
	Status     string   `json:"status,omitempty"`
}

// BulkUsersRequest targets several customer accounts at once.
type BulkUsersRequest struct {
	UserIDs []string `json:"userIds"`
	Status  string   `json:"status,omitempty"`
}

// VendorNotesRequest is the body of POST /admin/vendors/{id}/notes.
type VendorNotesRequest struct {
	Notes string `json:"notes"`
}
