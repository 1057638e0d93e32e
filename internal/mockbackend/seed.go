package mockbackend

import (
	"fmt"
	"strings"
	"time"

	"github.com/PSchristopher/phoenix-admin/client"
)

func strPtr(s string) *string { return &s }

// seed fills the store with a small, consistent marketplace: customers with
// orders, vendors with products.
func (s *Server) seed() {
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	stamp := func(days int) string { return base.AddDate(0, 0, days).Format(time.RFC3339) }

	type person struct{ first, last, city, state string }
	people := []person{
		{"Aarav", "Sharma", "Pune", "Maharashtra"},
		{"Diya", "Patel", "Ahmedabad", "Gujarat"},
		{"Kabir", "Iyer", "Chennai", "Tamil Nadu"},
		{"Meera", "Nair", "Kochi", "Kerala"},
		{"Rohan", "Gupta", "Delhi", "Delhi"},
		{"Sara", "Khan", "Lucknow", "Uttar Pradesh"},
	}
	s.customers = map[string]client.Customer{}
	s.customerOrders = map[string][]client.CustomerOrder{}
	orderStatuses := []string{client.OrderDelivered, client.OrderPending, client.OrderShipped, client.OrderCancelled, client.OrderReturned, client.OrderConfirmed}

	for i, p := range people {
		id := newID()
		email := strings.ToLower(p.first + "." + p.last + "@example.com")
		status := client.UserActive
		if i%4 == 3 {
			status = client.UserInactive
		}
		s.users = append(s.users, client.User{
			ID:        id,
			FirstName: p.first,
			LastName:  p.last,
			Email:     email,
			Username:  strings.ToLower(p.first),
			Role:      "customer",
			Status:    status,
			CreatedAt: stamp(-30 + i),
		})
		s.customers[id] = client.Customer{
			ID:                id,
			Name:              p.first + " " + p.last,
			Email:             email,
			PrimaryPhone:      fmt.Sprintf("+91 98%08d", 1000+i),
			WhatsappAvailable: i%2 == 0,
			DeliveryAddress:   fmt.Sprintf("%d MG Road, %s, %s", 10+i, p.city, p.state),
			FirstName:         p.first,
			LastName:          p.last,
		}

		for j := 0; j < 2; j++ {
			n := i*2 + j
			orderID := newID()
			number := fmt.Sprintf("ORD-%05d", 1001+n)
			qty := 1 + n%3
			price := float64(499 + 250*n)
			status := orderStatuses[n%len(orderStatuses)]
			item := fmt.Sprintf("Handloom Saree %d", n)
			s.orders = append(s.orders, client.Order{
				ID:            orderID,
				OrderNumber:   number,
				CustomerName:  p.first + " " + p.last,
				CustomerEmail: email,
				TotalAmount:   price * float64(qty),
				Currency:      "INR",
				Status:        status,
				PaymentStatus: "paid",
				ShippingAddress: client.Address{
					Street:  fmt.Sprintf("%d MG Road", 10+i),
					City:    p.city,
					State:   p.state,
					Pincode: fmt.Sprintf("4110%02d", n),
					Country: "India",
				},
				Items:     []client.OrderItem{{ID: newID(), ProductName: item, Quantity: qty, UnitPrice: price, TotalPrice: price * float64(qty)}},
				CreatedAt: stamp(n),
				UpdatedAt: stamp(n + 1),
			})
			s.customerOrders[id] = append(s.customerOrders[id], client.CustomerOrder{
				ID:         orderID,
				OrderID:    number,
				Status:     status,
				Date:       stamp(n),
				LeadSource: "web",
				Items:      []client.CustomerOrderItem{{Name: item, Color: "Indigo", Quantity: qty}},
				Payment:    &client.PaymentDetails{Method: "UPI", ID: "pay_" + orderID[:8], Type: "prepaid"},
			})
		}
	}

	type company struct{ name, kind, city, state, status string }
	companies := []company{
		{"Kanchipuram Weaves", "Manufacturer", "Kanchipuram", "Tamil Nadu", client.VendorApproved},
		{"Jaipur Block Prints", "Wholesaler", "Jaipur", "Rajasthan", client.VendorSubmitted},
		{"Bengal Tant House", "Retailer", "Kolkata", "West Bengal", client.VendorPending},
		{"Mysore Silk Co", "Manufacturer", "Mysuru", "Karnataka", client.VendorRejected},
	}
	for i, c := range companies {
		vid := newID()
		valid := true
		v := &client.Vendor{
			ID:                 vid,
			VendorID:           fmt.Sprintf("VEN-%03d", i+1),
			CompanyName:        c.name,
			BusinessType:       c.kind,
			PANNumber:          strPtr(fmt.Sprintf("ABCDE%04dF", i+1)),
			City:               c.city,
			State:              c.state,
			Country:            "India",
			Pincode:            fmt.Sprintf("6000%02d", i),
			VerificationStatus: c.status,
			Documents: []client.VendorDocument{{
				ID:               newID(),
				VendorID:         vid,
				DocumentRuleName: "GST Certificate",
				FileURL:          fmt.Sprintf("https://files.example.com/%s/gst.pdf", vid),
				FileType:         "application/pdf",
				FileSize:         102400,
				IsValid:          &valid,
				CreatedAt:        stamp(-60 + i),
			}},
			BankDetails: &client.BankDetails{
				BankName:          "State Bank of India",
				IFSCCode:          fmt.Sprintf("SBIN000%04d", i),
				BranchName:        c.city,
				AccountNumber:     fmt.Sprintf("3012%08d", i),
				AccountHolderName: c.name,
			},
			Categories: []client.Category{{
				ID:            newID(),
				VendorID:      vid,
				CategoryName:  "Sarees",
				Subcategories: []client.Subcategory{{ID: newID(), SubcategoryName: "Silk"}},
			}},
			User: client.VendorUser{
				ID:          newID(),
				FullName:    c.name + " Owner",
				Email:       fmt.Sprintf("owner%d@vendor.example.com", i+1),
				PhoneNumber: fmt.Sprintf("+91 97%08d", i),
				IsActive:    true,
				IsVerified:  c.status == client.VendorApproved,
			},
			CreatedAt: stamp(-60 + i),
		}
		if i%2 == 0 {
			v.GSTNumber = strPtr(fmt.Sprintf("29ABCDE%04dF1Z5", i+1))
		}
		s.vendors = append(s.vendors, v)

		for k := 0; k < 3; k++ {
			n := i*3 + k
			status := []string{client.ProductPending, client.ProductApproved, client.ProductRejected}[n%3]
			price := int64(250000 + 10000*n)
			p := &client.Product{
				ID:            newID(),
				ProductName:   fmt.Sprintf("%s Saree %d", c.name, k+1),
				Brand:         c.name,
				SKU:           fmt.Sprintf("SKU-%04d", 100+n),
				Description:   "Hand woven, pure fabric.",
				Category:      "Sarees",
				Subcategory:   "Silk",
				Weight:        0.8,
				Images:        []client.ProductImage{{ID: newID(), ImageURL: fmt.Sprintf("https://img.example.com/p%d.jpg", n)}},
				Variants:      []client.ProductVariant{{ID: newID(), OptionName: "Colour", OptionValue: "Maroon", PriceCents: price, Available: true}},
				Status:        status,
				PriceCents:    price,
				StockQuantity: (n * 7) % 25,
				Currency:      "INR",
				Vendor:        &client.VendorSummary{CompanyName: c.name, BusinessType: c.kind, VerificationStatus: c.status, City: c.city, State: c.state},
				CreatedAt:     stamp(-20 + n),
				UpdatedAt:     stamp(-10 + n),
			}
			if status == client.ProductRejected {
				p.RejectionReasons = "Images are blurry"
			}
			s.products = append(s.products, p)
		}
	}
}

