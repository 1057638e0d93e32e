package types

// ------------------------------
// Orders
// ------------------------------

// Address is a postal address attached to an order.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID          string  `json:"id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// Order represents a marketplace order as listed by the admin backend.
type Order struct {
	ID              string      `json:"id"`
	DisplayID       string      `json:"display_id,omitempty"`
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	Currency        string      `json:"currency"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	ShippingAddress Address     `json:"shipping_address"`
	Items           []OrderItem `json:"items"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

// Order statuses reported by the backend.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
	OrderReturned  = "returned"
)

// CustomerOrder is the reduced order shape served per customer.
type CustomerOrder struct {
	ID         string              `json:"id"`
	OrderID    string              `json:"orderId"`
	Items      []CustomerOrderItem `json:"items,omitempty"`
	LeadSource string              `json:"leadSource,omitempty"`
	Payment    *PaymentDetails     `json:"payment,omitempty"`
	Status     string              `json:"status,omitempty"`
	Date       string              `json:"date,omitempty"`
}

// CustomerOrderItem is one line of a CustomerOrder.
type CustomerOrderItem struct {
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// PaymentDetails describes how a customer order was paid.
type PaymentDetails struct {
	Method string `json:"method,omitempty"`
	ID     string `json:"id,omitempty"`
	Type   string `json:"type,omitempty"`
}

// ------------------------------
// Products
// ------------------------------

// ProductImage is an image attached to a product.
type ProductImage struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
}

// ProductVariant is a purchasable option of a product.
type ProductVariant struct {
	ID          string `json:"id"`
	OptionName  string `json:"option_name"`
	OptionValue string `json:"option_value"`
	PriceCents  int64  `json:"price_cents"`
	Available   bool   `json:"available"`
}

// VendorSummary is the vendor block embedded in a product.
type VendorSummary struct {
	CompanyName        string `json:"company_name"`
	BusinessType       string `json:"business_type"`
	GSTNumber          string `json:"gst_number,omitempty"`
	VerificationStatus string `json:"verification_status"`
	City               string `json:"city"`
	State              string `json:"state"`
}

// Product is a listing under admin review.
type Product struct {
	ID                  string           `json:"id"`
	ProductName         string           `json:"product_name"`
	Brand               string           `json:"brand,omitempty"`
	SKU                 string           `json:"sku,omitempty"`
	Description         string           `json:"description,omitempty"`
	Category            string           `json:"category,omitempty"`
	Subcategory         string           `json:"subcategory,omitempty"`
	Weight              any              `json:"weight,omitempty"`
	Images              []ProductImage   `json:"images,omitempty"`
	Variants            []ProductVariant `json:"variants,omitempty"`
	Status              string           `json:"status"`
	RejectionReasons    string           `json:"rejection_reasons,omitempty"`
	PriceCents          int64            `json:"price_cents"`
	CompareAtPriceCents int64            `json:"compare_at_price_cents,omitempty"`
	StockQuantity       int              `json:"stock_quantity"`
	Currency            string           `json:"currency,omitempty"`
	MetaTitle           string           `json:"meta_title,omitempty"`
	MetaDescription     string           `json:"meta_description,omitempty"`
	Vendor              *VendorSummary   `json:"vendor,omitempty"`
	CreatedAt           string           `json:"created_at"`
	UpdatedAt           string           `json:"updated_at"`
}

// Product review statuses.
const (
	ProductPending  = "pending"
	ProductApproved = "approved"
	ProductRejected = "rejected"
)

// ------------------------------
// Customers
// ------------------------------

// User is a customer account as listed by the admin backend.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// User account statuses accepted by the bulk status endpoint.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// Customer is the detail record of a customer.
type Customer struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	PrimaryPhone      string `json:"primaryPhone,omitempty"`
	AlternatePhone    string `json:"alternatePhone,omitempty"`
	WhatsappAvailable bool   `json:"whatsappAvailable,omitempty"`
	DeliveryAddress   string `json:"deliveryAddress,omitempty"`
	ProfileImage      string `json:"profileImage,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Avatar            string `json:"avatar,omitempty"`
}

// ------------------------------
// Vendors
// ------------------------------

// VendorDocument is an uploaded onboarding document.
type VendorDocument struct {
	ID               string `json:"id"`
	VendorID         string `json:"vendor_id,omitempty"`
	DocumentRuleName string `json:"document_rule_name"`
	FileURL          string `json:"file_url"`
	FileType         string `json:"file_type,omitempty"`
	FileSize         int64  `json:"file_size,omitempty"`
	IsValid          *bool  `json:"is_valid,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// BankDetails holds the payout account of a vendor.
type BankDetails struct {
	BankName          string           `json:"bank_name"`
	IFSCCode          string           `json:"ifsc_code"`
	BranchName        string           `json:"branch_name"`
	AccountNumber     string           `json:"account_number"`
	AccountHolderName string           `json:"account_holder_name"`
	Documents         []VendorDocument `json:"documents,omitempty"`
}

// Subcategory is a vendor subcategory with its compliance uploads.
type Subcategory struct {
	ID                string           `json:"id"`
	CategoryID        string           `json:"category_id"`
	SubcategoryName   string           `json:"subcategory_name"`
	UploadedDocuments []VendorDocument `json:"uploadedDocuments,omitempty"`
}

// Category is a product category a vendor sells in.
type Category struct {
	ID            string        `json:"id,omitempty"`
	VendorID      string        `json:"vendor_id,omitempty"`
	CategoryName  string        `json:"category_name"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// VendorUser is the account owning a vendor profile.
type VendorUser struct {
	ID          string `json:"id,omitempty"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	IsActive    bool   `json:"is_active,omitempty"`
	IsVerified  bool   `json:"is_verified,omitempty"`
	LastLogin   string `json:"last_login,omitempty"`
}

// Vendor is a seller going through onboarding and compliance review.
type Vendor struct {
	ID                  string           `json:"id"`
	VendorID            string           `json:"vendor_id"`
	CompanyName         string           `json:"company_name"`
	BusinessType        string           `json:"business_type"`
	PANNumber           *string          `json:"pan_number,omitempty"`
	GSTNumber           *string          `json:"gst_number,omitempty"`
	Address             string           `json:"address,omitempty"`
	City                string           `json:"city,omitempty"`
	State               string           `json:"state,omitempty"`
	Pincode             string           `json:"pincode,omitempty"`
	Country             string           `json:"country,omitempty"`
	Documents           []VendorDocument `json:"documents,omitempty"`
	BankDetails         *BankDetails     `json:"bank_details,omitempty"`
	DigitalSignatureURL string           `json:"digital_signature_url,omitempty"`
	VerificationStatus  string           `json:"verification_status"`
	Categories          []Category       `json:"categories,omitempty"`
	User                VendorUser       `json:"user"`
	CreatedAt           string           `json:"created_at"`
	UpdatedAt           string           `json:"updated_at,omitempty"`
}

// Vendor verification statuses.
const (
	VendorPending   = "pending"
	VendorSubmitted = "submitted"
	VendorApproved  = "approved"
	VendorRejected  = "rejected"
)
