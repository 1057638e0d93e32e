package types

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ------------------------------
// Response Types
// ------------------------------

// Response is a successful (2xx) reply with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("decode: empty body (status %d)", r.StatusCode)
	}
	return json.Unmarshal(r.Body, v)
}

// Pagination is the paging block of list endpoints. Orders, products and
// users use page/perPage/total/totalPages; vendors use the currentPage
// family of keys.
type Pagination struct {
	Page         int  `json:"page,omitempty"`
	PerPage      int  `json:"perPage,omitempty"`
	Total        int  `json:"total,omitempty"`
	TotalPages   int  `json:"totalPages,omitempty"`
	CurrentPage  int  `json:"currentPage,omitempty"`
	TotalItems   int  `json:"totalItems,omitempty"`
	ItemsPerPage int  `json:"itemsPerPage,omitempty"`
	HasNextPage  bool `json:"hasNextPage,omitempty"`
	HasPrevPage  bool `json:"hasPrevPage,omitempty"`
}

// Page is the {success, data, pagination} envelope of list endpoints.
type Page[T any] struct {
	Success    bool        `json:"success"`
	Data       []T         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Envelope is the {success, data} wrapper of detail endpoints.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// ActionResult is the acknowledgement of a mutation endpoint.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse carries the issued credential. The token may sit at the top
// level or inside data.
type LoginResponse struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin,omitempty"`
}

// Admin identifies the logged-in staff member.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// OrderStats counts orders by terminal status.
type OrderStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Returned  int `json:"returned"`
}

// VendorStats counts vendors by verification status.
type VendorStats struct {
	Pending   int `json:"pending"`
	Submitted int `json:"submitted"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
}
