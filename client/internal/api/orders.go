package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

// ListOrders returns one page of orders.
func ListOrders(ctx context.Context, r Requester, f types.OrderFilter) (*types.Page[types.Order], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := r.PrivateRequest(ctx, http.MethodGet, withQuery("/admin/orders", f.Query()), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var page types.Page[types.Order]
	if err := decodeInto("list orders", resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListCustomerOrders returns every order of one customer. The endpoint
// answers either with a bare array or with a {data: [...]} envelope.
func ListCustomerOrders(ctx context.Context, r Requester, customerID string) ([]types.CustomerOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID("customer", customerID); err != nil {
		return nil, err
	}
	resp, err := r.PrivateRequest(ctx, http.MethodGet, resourcePath("admin", customerID, "orders"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}

	var list []types.CustomerOrder
	if err := json.Unmarshal(resp.Body, &list); err == nil {
		return list, nil
	}
	var env types.Envelope[[]types.CustomerOrder]
	if err := decodeInto("list customer orders", resp, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []types.CustomerOrder{}, nil
	}
	return env.Data, nil
}

// SummarizeOrders counts delivered, cancelled and returned orders.
func SummarizeOrders(orders []types.Order) types.OrderStats {
	stats := types.OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case types.OrderDelivered:
			stats.Completed++
		case types.OrderCancelled:
			stats.Cancelled++
		case types.OrderReturned:
			stats.Returned++
		}
	}
	return stats
}
