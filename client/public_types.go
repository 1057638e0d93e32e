package client

import "github.com/PSchristopher/phoenix-admin/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Transport
	Response = types.Response

	// Requests
	LoginRequest  = types.LoginRequest
	OrderFilter   = types.OrderFilter
	ProductFilter = types.ProductFilter
	UserFilter    = types.UserFilter
	VendorFilter  = types.VendorFilter

	// Domain entities
	Address           = types.Address
	Order             = types.Order
	OrderItem         = types.OrderItem
	CustomerOrder     = types.CustomerOrder
	CustomerOrderItem = types.CustomerOrderItem
	PaymentDetails    = types.PaymentDetails
	Product           = types.Product
	ProductImage      = types.ProductImage
	ProductVariant    = types.ProductVariant
	VendorSummary     = types.VendorSummary
	User              = types.User
	Customer          = types.Customer
	Vendor            = types.Vendor
	VendorDocument    = types.VendorDocument
	VendorUser        = types.VendorUser
	BankDetails       = types.BankDetails
	Category          = types.Category
	Subcategory       = types.Subcategory
	Admin             = types.Admin

	// Responses
	Pagination     = types.Pagination
	OrdersPage     = types.Page[types.Order]
	ProductsPage   = types.Page[types.Product]
	UsersPage      = types.Page[types.User]
	VendorsPage    = types.Page[types.Vendor]
	VendorEnvelope = types.Envelope[types.Vendor]
	ActionResult   = types.ActionResult
	LoginResponse  = types.LoginResponse
	OrderStats     = types.OrderStats
	VendorStats    = types.VendorStats
)

// Status values understood by the backend.
const (
	OrderPending   = types.OrderPending
	OrderConfirmed = types.OrderConfirmed
	OrderShipped   = types.OrderShipped
	OrderDelivered = types.OrderDelivered
	OrderCancelled = types.OrderCancelled
	OrderReturned  = types.OrderReturned

	ProductPending  = types.ProductPending
	ProductApproved = types.ProductApproved
	ProductRejected = types.ProductRejected

	UserActive   = types.UserActive
	UserInactive = types.UserInactive

	VendorPending   = types.VendorPending
	VendorSubmitted = types.VendorSubmitted
	VendorApproved  = types.VendorApproved
	VendorRejected  = types.VendorRejected
)
