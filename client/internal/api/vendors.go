package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

// ListVendors returns one page of vendors.
func ListVendors(ctx context.Context, r Requester, f types.VendorFilter) (*types.Page[types.Vendor], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := r.PrivateRequest(ctx, http.MethodGet, withQuery("/admin/vendors", f.Query()), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	var page types.Page[types.Vendor]
	if err := decodeInto("list vendors", resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetVendor fetches the full onboarding record of a vendor.
func GetVendor(ctx context.Context, r Requester, vendorID string) (*types.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID("vendor", vendorID); err != nil {
		return nil, err
	}
	resp, err := r.PrivateRequest(ctx, http.MethodGet, resourcePath("admin", vendorID, "vendor"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	var env types.Envelope[types.Vendor]
	if err := decodeInto("get vendor", resp, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ApproveVendor marks a vendor as verified.
func ApproveVendor(ctx context.Context, r Requester, vendorID string) error {
	if err := types.ValidateID("vendor", vendorID); err != nil {
		return err
	}
	return mutate(ctx, r, "approve vendor", http.MethodPut, resourcePath("admin", "vendors", vendorID, "approve"), nil)
}

// RejectVendor marks a vendor as rejected.
func RejectVendor(ctx context.Context, r Requester, vendorID string) error {
	if err := types.ValidateID("vendor", vendorID); err != nil {
		return err
	}
	return mutate(ctx, r, "reject vendor", http.MethodPut, resourcePath("admin", "vendors", vendorID, "reject"), nil)
}

// SaveVendorNotes stores internal staff notes on a vendor.
func SaveVendorNotes(ctx context.Context, r Requester, vendorID, notes string) error {
	if err := types.ValidateID("vendor", vendorID); err != nil {
		return err
	}
	body := types.VendorNotesRequest{Notes: notes}
	return mutate(ctx, r, "save vendor notes", http.MethodPost, resourcePath("admin", "vendors", vendorID, "notes"), body)
}

// SummarizeVendors counts vendors by verification status.
func SummarizeVendors(vendors []types.Vendor) types.VendorStats {
	var stats types.VendorStats
	for _, v := range vendors {
		switch v.VerificationStatus {
		case types.VendorPending:
			stats.Pending++
		case types.VendorSubmitted:
			stats.Submitted++
		case types.VendorApproved:
			stats.Approved++
		case types.VendorRejected:
			stats.Rejected++
		}
	}
	return stats
}
