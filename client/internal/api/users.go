package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

// ListUsers returns one page of customer accounts.
func ListUsers(ctx context.Context, r Requester, f types.UserFilter) (*types.Page[types.User], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := r.PrivateRequest(ctx, http.MethodGet, withQuery("/user", f.Query()), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var page types.Page[types.User]
	if err := decodeInto("list users", resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCustomer fetches a customer detail record.
func GetCustomer(ctx context.Context, r Requester, customerID string) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID("customer", customerID); err != nil {
		return nil, err
	}
	resp, err := r.PrivateRequest(ctx, http.MethodGet, resourcePath("admin", "customer", customerID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	var env struct {
		types.Customer
		Data *types.Customer `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, fmt.Errorf("get customer: decode: %w", err)
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return &env.Customer, nil
}

// BulkDeleteUsers removes several customer accounts.
func BulkDeleteUsers(ctx context.Context, r Requester, userIDs []string) error {
	if err := types.ValidateIDs("user", userIDs); err != nil {
		return err
	}
	body := types.BulkUsersRequest{UserIDs: userIDs}
	return mutate(ctx, r, "bulk delete users", http.MethodDelete, "/admin/users/bulk", body)
}

// BulkUpdateUserStatus activates or deactivates several customer accounts.
func BulkUpdateUserStatus(ctx context.Context, r Requester, userIDs []string, status string) error {
	if err := types.ValidateIDs("user", userIDs); err != nil {
		return err
	}
	if err := types.ValidateUserStatus(status); err != nil {
		return err
	}
	body := types.BulkUsersRequest{UserIDs: userIDs, Status: status}
	return mutate(ctx, r, "bulk update user status", http.MethodPut, "/admin/users/bulk/status", body)
}
