package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/PSchristopher/phoenix-admin/client"
)

// ProductHandler exposes the product review tools.
type ProductHandler struct {
	client *client.Client
}

func NewProductHandler(c *client.Client) *ProductHandler { return &ProductHandler{client: c} }

func (ph *ProductHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_products",
		mcp.WithDescription("List one page of product listings"),
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithString("status", mcp.Description("pending, approved or rejected")),
		mcp.WithString("stock", mcp.Description("in_stock, low_stock or out_of_stock")),
		mcp.WithNumber("page", mcp.Description("Page number, default 1")),
		mcp.WithNumber("per_page", mcp.Description("Page size (1-100)")),
	)
	get := mcp.NewTool("get_product",
		mcp.WithDescription("Get one product with images and variants"),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product ID")),
	)
	approve := mcp.NewTool("approve_product",
		mcp.WithDescription("Approve a product so it is published"),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product ID")),
	)
	reject := mcp.NewTool("reject_product",
		mcp.WithDescription("Reject a product; the reason is shown to the vendor"),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product ID")),
		mcp.WithString("reason", mcp.Required(), mcp.Description("Rejection reason")),
	)
	s.AddTool(list, ph.handleList)
	s.AddTool(get, ph.handleGet)
	s.AddTool(approve, ph.handleApprove)
	s.AddTool(reject, ph.handleReject)
	return nil
}

func (ph *ProductHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := client.ProductFilter{
		Search:  stringArg(req, "search"),
		Status:  stringArg(req, "status"),
		Stock:   stringArg(req, "stock"),
		Page:    intArg(req, "page", 1<<20),
		PerPage: intArg(req, "per_page", maxPageSize),
	}
	log.Debug().Str("status", f.Status).Str("stock", f.Stock).Msg("list_products invoked")

	page, err := ph.client.ListProducts(ctx, f)
	if err != nil {
		return toolError("list_products", err), nil
	}
	return jsonResult(page)
}

func (ph *ProductHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := ph.client.GetProduct(ctx, id)
	if err != nil {
		return toolError("get_product", err), nil
	}
	return jsonResult(p)
}

func (ph *ProductHandler) handleApprove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.Debug().Str("product_id", id).Msg("approve_product invoked")

	if err := ph.client.ApproveProduct(ctx, id); err != nil {
		return toolError("approve_product", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("product %s approved", id)), nil
}

func (ph *ProductHandler) handleReject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reason := stringArg(req, "reason")
	log.Debug().Str("product_id", id).Msg("reject_product invoked")

	if err := ph.client.RejectProduct(ctx, id, reason); err != nil {
		return toolError("reject_product", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("product %s rejected", id)), nil
}
