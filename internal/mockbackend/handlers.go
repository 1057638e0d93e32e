package mockbackend

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/internal/mockbackend/respond"
)

// --------------------------------------------------------------------
// Auth
// --------------------------------------------------------------------

// login POST /admin/login
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req client.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.RLock()
	acct, ok := s.admins[email]
	s.mu.RUnlock()
	if !ok || acct.password != req.Password {
		// The dashboard treats a failed login as a form error, not an expired session.
		respond.WriteBadRequest(w, "Invalid email or password")
		return
	}

	token, err := s.issueToken(email, acct)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info().Str("email", email).Msg("admin logged in")
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"admin":   client.Admin{ID: acct.id, Email: email, Name: acct.name, Role: "admin"},
	})
}

// --------------------------------------------------------------------
// Orders
// --------------------------------------------------------------------

// listOrders GET /admin/orders?search&status&page&perPage
func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search, status := q.Get("search"), q.Get("status")
	page, size := pageParams(r, "perPage")

	s.mu.RLock()
	var matched []client.Order
	for _, o := range s.orders {
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		if !matchesAny(search, o.OrderNumber, o.CustomerName, o.CustomerEmail) {
			continue
		}
		matched = append(matched, o)
	}
	s.mu.RUnlock()

	respond.WriteJSON(w, http.StatusOK, client.OrdersPage{
		Success:    true,
		Data:       paginate(matched, page, size),
		Pagination: listPagination(len(matched), page, size),
	})
}

// listCustomerOrders GET /admin/{customerId}/orders
func (s *Server) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["customerId"]
	s.mu.RLock()
	_, known := s.customers[id]
	orders := append([]client.CustomerOrder{}, s.customerOrders[id]...)
	s.mu.RUnlock()
	if !known {
		respond.WriteNotFound(w, "customer not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": orders})
}

// --------------------------------------------------------------------
// Products
// --------------------------------------------------------------------

// listProducts GET /admin/products?search&status&stock&page&perPage
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search, status, stock := q.Get("search"), q.Get("status"), q.Get("stock")
	page, size := pageParams(r, "perPage")

	s.mu.RLock()
	var matched []client.Product
	for _, p := range s.products {
		if status != "" && status != "all" && p.Status != status {
			continue
		}
		if !stockMatches(stock, p.StockQuantity) {
			continue
		}
		if !matchesAny(search, p.ProductName, p.SKU, p.Brand) {
			continue
		}
		matched = append(matched, *p)
	}
	s.mu.RUnlock()

	respond.WriteJSON(w, http.StatusOK, client.ProductsPage{
		Success:    true,
		Data:       paginate(matched, page, size),
		Pagination: listPagination(len(matched), page, size),
	})
}

func stockMatches(filter string, qty int) bool {
	switch filter {
	case "in_stock":
		return qty > 0
	case "out_of_stock":
		return qty == 0
	case "low_stock":
		return qty > 0 && qty < 5
	default:
		return true
	}
}

// productByID must be called with s.mu held.
func (s *Server) productByID(id string) *client.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// getProduct GET /admin/products/{productId}; the record is served bare.
func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	p := s.productByID(mux.Vars(r)["productId"])
	var out client.Product
	if p != nil {
		out = *p
	}
	s.mu.RUnlock()
	if p == nil {
		respond.WriteNotFound(w, "product not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// approveProduct PATCH /admin/products/{productId}/approve
func (s *Server) approveProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p := s.productByID(mux.Vars(r)["productId"])
	if p != nil {
		p.Status = client.ProductApproved
		p.RejectionReasons = ""
	}
	s.mu.Unlock()
	if p == nil {
		respond.WriteNotFound(w, "product not found")
		return
	}
	respond.WriteOK(w, "Product approved")
}

// rejectProduct PATCH /admin/products/{productId}/reject
func (s *Server) rejectProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RejectionReason string `json:"rejection_reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.RejectionReason) == "" {
		respond.WriteBadRequest(w, "rejection_reason is required")
		return
	}

	s.mu.Lock()
	p := s.productByID(mux.Vars(r)["productId"])
	if p != nil {
		p.Status = client.ProductRejected
		p.RejectionReasons = req.RejectionReason
	}
	s.mu.Unlock()
	if p == nil {
		respond.WriteNotFound(w, "product not found")
		return
	}
	respond.WriteOK(w, "Product rejected")
}

type bulkProducts struct {
	ProductIDs []string `json:"productIds"`
	Status     string   `json:"status"`
}

func decodeBulkProducts(w http.ResponseWriter, r *http.Request) (bulkProducts, bool) {
	var req bulkProducts
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return req, false
	}
	if len(req.ProductIDs) == 0 {
		respond.WriteBadRequest(w, "productIds is required")
		return req, false
	}
	return req, true
}

// bulkDeleteProducts DELETE /admin/products/bulk
func (s *Server) bulkDeleteProducts(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBulkProducts(w, r)
	if !ok {
		return
	}
	drop := toSet(req.ProductIDs)
	s.mu.Lock()
	kept := s.products[:0]
	removed := 0
	for _, p := range s.products {
		if drop[p.ID] {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	s.mu.Unlock()
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "deletedCount": removed})
}

// bulkProductStatus PUT /admin/products/bulk/status
func (s *Server) bulkProductStatus(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBulkProducts(w, r)
	if !ok {
		return
	}
	switch req.Status {
	case client.ProductPending, client.ProductApproved, client.ProductRejected:
	default:
		respond.WriteBadRequest(w, "invalid status")
		return
	}
	want := toSet(req.ProductIDs)
	s.mu.Lock()
	updated := 0
	for _, p := range s.products {
		if want[p.ID] {
			p.Status = req.Status
			updated++
		}
	}
	s.mu.Unlock()
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "updatedCount": updated})
}

// --------------------------------------------------------------------
// Customers
// --------------------------------------------------------------------

// listUsers GET /user?search&status&role&page&perPage
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search, status, role := q.Get("search"), q.Get("status"), q.Get("role")
	page, size := pageParams(r, "perPage")

	s.mu.RLock()
	var matched []client.User
	for _, u := range s.users {
		if status != "" && status != "all" && u.Status != status {
			continue
		}
		if role != "" && role != "all" && u.Role != role {
			continue
		}
		if !matchesAny(search, u.FirstName+" "+u.LastName, u.Email, u.Username) {
			continue
		}
		matched = append(matched, u)
	}
	s.mu.RUnlock()

	respond.WriteJSON(w, http.StatusOK, client.UsersPage{
		Success:    true,
		Data:       paginate(matched, page, size),
		Pagination: listPagination(len(matched), page, size),
	})
}

// getCustomer GET /admin/customer/{customerId}
func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	c, ok := s.customers[mux.Vars(r)["customerId"]]
	s.mu.RUnlock()
	if !ok {
		respond.WriteNotFound(w, "customer not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": c})
}

type bulkUsers struct {
	UserIDs []string `json:"userIds"`
	Status  string   `json:"status"`
}

func decodeBulkUsers(w http.ResponseWriter, r *http.Request) (bulkUsers, bool) {
	var req bulkUsers
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return req, false
	}
	if len(req.UserIDs) == 0 {
		respond.WriteBadRequest(w, "userIds is required")
		return req, false
	}
	return req, true
}

// bulkDeleteUsers DELETE /admin/users/bulk
func (s *Server) bulkDeleteUsers(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBulkUsers(w, r)
	if !ok {
		return
	}
	drop := toSet(req.UserIDs)
	s.mu.Lock()
	kept := s.users[:0]
	removed := 0
	for _, u := range s.users {
		if drop[u.ID] {
			delete(s.customers, u.ID)
			delete(s.customerOrders, u.ID)
			removed++
			continue
		}
		kept = append(kept, u)
	}
	s.users = kept
	s.mu.Unlock()
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "deletedCount": removed})
}

// bulkUserStatus PUT /admin/users/bulk/status
func (s *Server) bulkUserStatus(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBulkUsers(w, r)
	if !ok {
		return
	}
	if req.Status != client.UserActive && req.Status != client.UserInactive {
		respond.WriteBadRequest(w, "invalid status")
		return
	}
	want := toSet(req.UserIDs)
	s.mu.Lock()
	updated := 0
	for i := range s.users {
		if want[s.users[i].ID] {
			s.users[i].Status = req.Status
			updated++
		}
	}
	s.mu.Unlock()
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "updatedCount": updated})
}

// --------------------------------------------------------------------
// Vendors
// --------------------------------------------------------------------

// listVendors GET /admin/vendors?page&limit&search
func (s *Server) listVendors(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page, size := pageParams(r, "limit")

	s.mu.RLock()
	var matched []client.Vendor
	for _, v := range s.vendors {
		if !matchesAny(search, v.CompanyName, v.VendorID, v.User.FullName, v.User.Email) {
			continue
		}
		matched = append(matched, *v)
	}
	s.mu.RUnlock()

	respond.WriteJSON(w, http.StatusOK, client.VendorsPage{
		Success:    true,
		Data:       paginate(matched, page, size),
		Pagination: vendorPagination(len(matched), page, size),
	})
}

// vendorByID must be called with s.mu held.
func (s *Server) vendorByID(id string) *client.Vendor {
	for _, v := range s.vendors {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// getVendor GET /admin/{vendorId}/vendor
func (s *Server) getVendor(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	v := s.vendorByID(mux.Vars(r)["vendorId"])
	var out client.Vendor
	if v != nil {
		out = *v
	}
	s.mu.RUnlock()
	if v == nil {
		respond.WriteNotFound(w, "vendor not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, client.VendorEnvelope{Success: true, Data: out})
}

// setVendorStatus serves PUT /admin/vendors/{vendorId}/approve|reject.
func (s *Server) setVendorStatus(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		v := s.vendorByID(mux.Vars(r)["vendorId"])
		if v != nil {
			v.VerificationStatus = status
			v.User.IsVerified = status == client.VendorApproved
			v.UpdatedAt = s.now().UTC().Format(time.RFC3339)
		}
		s.mu.Unlock()
		if v == nil {
			respond.WriteNotFound(w, "vendor not found")
			return
		}
		respond.WriteOK(w, "Vendor "+status)
	}
}

// saveVendorNotes POST /admin/vendors/{vendorId}/notes
func (s *Server) saveVendorNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	id := mux.Vars(r)["vendorId"]
	s.mu.Lock()
	v := s.vendorByID(id)
	if v != nil {
		s.vendorNotes[id] = req.Notes
	}
	s.mu.Unlock()
	if v == nil {
		respond.WriteNotFound(w, "vendor not found")
		return
	}
	respond.WriteOK(w, "Notes saved")
}

// VendorNotes returns the notes stored for a vendor.
func (s *Server) VendorNotes(vendorID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vendorNotes[vendorID]
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
