package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/PSchristopher/phoenix-admin/client"
)

// OrderHandler exposes list_orders and list_customer_orders.
type OrderHandler struct {
	client *client.Client
}

func NewOrderHandler(c *client.Client) *OrderHandler { return &OrderHandler{client: c} }

func (oh *OrderHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_orders",
		mcp.WithDescription("List one page of orders with status counts for the page"),
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithString("status", mcp.Description("pending, confirmed, shipped, delivered, cancelled, returned or all")),
		mcp.WithNumber("page", mcp.Description("Page number, default 1")),
		mcp.WithNumber("per_page", mcp.Description("Page size (1-100)")),
	)
	customer := mcp.NewTool("list_customer_orders",
		mcp.WithDescription("List every order placed by one customer"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID")),
	)
	s.AddTool(list, oh.handleListOrders)
	s.AddTool(customer, oh.handleListCustomerOrders)
	return nil
}

func (oh *OrderHandler) handleListOrders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := client.OrderFilter{
		Search:  stringArg(req, "search"),
		Status:  stringArg(req, "status"),
		Page:    intArg(req, "page", 1<<20),
		PerPage: intArg(req, "per_page", maxPageSize),
	}

	log.Debug().Str("status", f.Status).Int("page", f.Page).Msg("list_orders invoked")

	start := time.Now()
	page, err := oh.client.ListOrders(ctx, f)
	if err != nil {
		return toolError("list_orders", err), nil
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("count", len(page.Data)).Msg("list_orders completed")

	return jsonResult(map[string]any{
		"orders":     page.Data,
		"pagination": page.Pagination,
		"stats":      client.SummarizeOrders(page.Data),
	})
}

func (oh *OrderHandler) handleListCustomerOrders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, err := req.RequireString("customer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Str("customer_id", customerID).Msg("list_customer_orders invoked")

	orders, err := oh.client.ListCustomerOrders(ctx, customerID)
	if err != nil {
		return toolError("list_customer_orders", err), nil
	}
	return jsonResult(orders)
}
