package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/PSchristopher/phoenix-admin/client"
)

// CustomerHandler exposes customer account tools.
type CustomerHandler struct {
	client *client.Client
}

func NewCustomerHandler(c *client.Client) *CustomerHandler { return &CustomerHandler{client: c} }

func (ch *CustomerHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_users",
		mcp.WithDescription("List one page of customer accounts"),
		mcp.WithString("search", mcp.Description("Free-text search on name, email or phone")),
		mcp.WithString("status", mcp.Description("active or inactive")),
		mcp.WithString("role", mcp.Description("Account role")),
		mcp.WithNumber("page", mcp.Description("Page number, default 1")),
		mcp.WithNumber("per_page", mcp.Description("Page size (1-100)")),
	)
	get := mcp.NewTool("get_customer",
		mcp.WithDescription("Get one customer with addresses"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID")),
	)
	status := mcp.NewTool("set_users_status",
		mcp.WithDescription("Activate or deactivate several customer accounts"),
		mcp.WithString("user_ids", mcp.Required(), mcp.Description("Comma-separated customer IDs")),
		mcp.WithString("status", mcp.Required(), mcp.Description("active or inactive")),
	)
	s.AddTool(list, ch.handleList)
	s.AddTool(get, ch.handleGet)
	s.AddTool(status, ch.handleSetStatus)
	return nil
}

func (ch *CustomerHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := client.UserFilter{
		Search:  stringArg(req, "search"),
		Status:  stringArg(req, "status"),
		Role:    stringArg(req, "role"),
		Page:    intArg(req, "page", 1<<20),
		PerPage: intArg(req, "per_page", maxPageSize),
	}
	log.Debug().Str("status", f.Status).Msg("list_users invoked")

	page, err := ch.client.ListUsers(ctx, f)
	if err != nil {
		return toolError("list_users", err), nil
	}
	return jsonResult(page)
}

func (ch *CustomerHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("customer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c, err := ch.client.GetCustomer(ctx, id)
	if err != nil {
		return toolError("get_customer", err), nil
	}
	return jsonResult(c)
}

func (ch *CustomerHandler) handleSetStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := stringListArg(req, "user_ids")
	status := stringArg(req, "status")
	log.Debug().Strs("user_ids", ids).Str("status", status).Msg("set_users_status invoked")

	if err := ch.client.BulkUpdateUserStatus(ctx, ids, status); err != nil {
		return toolError("set_users_status", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d account(s) set to %s", len(ids), status)), nil
}
