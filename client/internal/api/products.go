package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

// ListProducts returns one page of product listings.
func ListProducts(ctx context.Context, r Requester, f types.ProductFilter) (*types.Page[types.Product], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := r.PrivateRequest(ctx, http.MethodGet, withQuery("/admin/products", f.Query()), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var page types.Page[types.Product]
	if err := decodeInto("list products", resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct fetches a single product. The backend serves the bare record;
// a {data: ...} envelope is unwrapped as well.
func GetProduct(ctx context.Context, r Requester, productID string) (*types.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID("product", productID); err != nil {
		return nil, err
	}
	resp, err := r.PrivateRequest(ctx, http.MethodGet, resourcePath("admin", "products", productID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	var env struct {
		types.Product
		Data *types.Product `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, fmt.Errorf("get product: decode: %w", err)
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return &env.Product, nil
}

// ApproveProduct publishes a product.
func ApproveProduct(ctx context.Context, r Requester, productID string) error {
	if err := types.ValidateID("product", productID); err != nil {
		return err
	}
	return mutate(ctx, r, "approve product", http.MethodPatch, resourcePath("admin", "products", productID, "approve"), nil)
}

// RejectProduct rejects a product with feedback for the vendor.
func RejectProduct(ctx context.Context, r Requester, productID, reason string) error {
	if err := types.ValidateID("product", productID); err != nil {
		return err
	}
	if err := types.ValidateRejectionReason(reason); err != nil {
		return err
	}
	body := types.RejectProductRequest{RejectionReason: reason}
	return mutate(ctx, r, "reject product", http.MethodPatch, resourcePath("admin", "products", productID, "reject"), body)
}

// BulkDeleteProducts removes several products.
func BulkDeleteProducts(ctx context.Context, r Requester, productIDs []string) error {
	if err := types.ValidateIDs("product", productIDs); err != nil {
		return err
	}
	body := types.BulkProductsRequest{ProductIDs: productIDs}
	return mutate(ctx, r, "bulk delete products", http.MethodDelete, "/admin/products/bulk", body)
}

// BulkUpdateProductStatus moves several products to status.
func BulkUpdateProductStatus(ctx context.Context, r Requester, productIDs []string, status string) error {
	if err := types.ValidateIDs("product", productIDs); err != nil {
		return err
	}
	if err := types.ValidateProductStatus(status); err != nil {
		return err
	}
	body := types.BulkProductsRequest{ProductIDs: productIDs, Status: status}
	return mutate(ctx, r, "bulk update product status", http.MethodPut, "/admin/products/bulk/status", body)
}
