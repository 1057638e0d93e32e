package client

import (
	"context"

	"github.com/PSchristopher/phoenix-admin/client/internal/api"
)

// --------------------------------------------------------------------
// Auth - public surface
// --------------------------------------------------------------------

// Login exchanges admin credentials for a bearer token. The token is
// returned, not stored; hand it to the session holder.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return api.Login(ctx, c, req)
}

// --------------------------------------------------------------------
// Orders
// --------------------------------------------------------------------

// ListOrders returns one page of orders.
func (c *Client) ListOrders(ctx context.Context, f OrderFilter) (*OrdersPage, error) {
	return api.ListOrders(ctx, c, f)
}

// ListCustomerOrders returns every order of one customer.
func (c *Client) ListCustomerOrders(ctx context.Context, customerID string) ([]CustomerOrder, error) {
	return api.ListCustomerOrders(ctx, c, customerID)
}

// SummarizeOrders counts delivered, cancelled and returned orders.
func SummarizeOrders(orders []Order) OrderStats { return api.SummarizeOrders(orders) }

// --------------------------------------------------------------------
// Products
// --------------------------------------------------------------------

// ListProducts returns one page of product listings.
func (c *Client) ListProducts(ctx context.Context, f ProductFilter) (*ProductsPage, error) {
	return api.ListProducts(ctx, c, f)
}

// GetProduct fetches a single product.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	return api.GetProduct(ctx, c, productID)
}

// ApproveProduct publishes a product.
func (c *Client) ApproveProduct(ctx context.Context, productID string) error {
	return api.ApproveProduct(ctx, c, productID)
}

// RejectProduct rejects a product; reason must not be blank.
func (c *Client) RejectProduct(ctx context.Context, productID, reason string) error {
	return api.RejectProduct(ctx, c, productID, reason)
}

// BulkDeleteProducts removes several products.
func (c *Client) BulkDeleteProducts(ctx context.Context, productIDs []string) error {
	return api.BulkDeleteProducts(ctx, c, productIDs)
}

// BulkUpdateProductStatus moves several products to status.
func (c *Client) BulkUpdateProductStatus(ctx context.Context, productIDs []string, status string) error {
	return api.BulkUpdateProductStatus(ctx, c, productIDs, status)
}

// --------------------------------------------------------------------
// Customers
// --------------------------------------------------------------------

// ListUsers returns one page of customer accounts.
func (c *Client) ListUsers(ctx context.Context, f UserFilter) (*UsersPage, error) {
	return api.ListUsers(ctx, c, f)
}

// GetCustomer fetches a customer detail record.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	return api.GetCustomer(ctx, c, customerID)
}

// BulkDeleteUsers removes several customer accounts.
func (c *Client) BulkDeleteUsers(ctx context.Context, userIDs []string) error {
	return api.BulkDeleteUsers(ctx, c, userIDs)
}

// BulkUpdateUserStatus activates or deactivates several customer accounts.
func (c *Client) BulkUpdateUserStatus(ctx context.Context, userIDs []string, status string) error {
	return api.BulkUpdateUserStatus(ctx, c, userIDs, status)
}

// --------------------------------------------------------------------
// Vendors
// --------------------------------------------------------------------

// ListVendors returns one page of vendors.
func (c *Client) ListVendors(ctx context.Context, f VendorFilter) (*VendorsPage, error) {
	return api.ListVendors(ctx, c, f)
}

// GetVendor fetches the onboarding record of a vendor.
func (c *Client) GetVendor(ctx context.Context, vendorID string) (*Vendor, error) {
	return api.GetVendor(ctx, c, vendorID)
}

// ApproveVendor marks a vendor as verified.
func (c *Client) ApproveVendor(ctx context.Context, vendorID string) error {
	return api.ApproveVendor(ctx, c, vendorID)
}

// RejectVendor marks a vendor as rejected.
func (c *Client) RejectVendor(ctx context.Context, vendorID string) error {
	return api.RejectVendor(ctx, c, vendorID)
}

// SaveVendorNotes stores internal staff notes on a vendor.
func (c *Client) SaveVendorNotes(ctx context.Context, vendorID, notes string) error {
	return api.SaveVendorNotes(ctx, c, vendorID, notes)
}

// SummarizeVendors counts vendors by verification status.
func SummarizeVendors(vendors []Vendor) VendorStats { return api.SummarizeVendors(vendors) }
