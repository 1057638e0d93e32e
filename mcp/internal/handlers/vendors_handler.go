package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/PSchristopher/phoenix-admin/client"
)

// VendorHandler exposes vendor onboarding tools.
type VendorHandler struct {
	client *client.Client
}

func NewVendorHandler(c *client.Client) *VendorHandler { return &VendorHandler{client: c} }

func (vh *VendorHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_vendors",
		mcp.WithDescription("List one page of vendors with verification status counts for the page"),
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithNumber("page", mcp.Description("Page number, default 1")),
		mcp.WithNumber("limit", mcp.Description("Page size (1-100)")),
	)
	get := mcp.NewTool("get_vendor",
		mcp.WithDescription("Get the onboarding record of a vendor"),
		mcp.WithString("vendor_id", mcp.Required(), mcp.Description("Vendor ID")),
	)
	approve := mcp.NewTool("approve_vendor",
		mcp.WithDescription("Mark a vendor as verified"),
		mcp.WithString("vendor_id", mcp.Required(), mcp.Description("Vendor ID")),
	)
	reject := mcp.NewTool("reject_vendor",
		mcp.WithDescription("Mark a vendor as rejected"),
		mcp.WithString("vendor_id", mcp.Required(), mcp.Description("Vendor ID")),
	)
	notes := mcp.NewTool("save_vendor_notes",
		mcp.WithDescription("Store internal staff notes on a vendor, replacing earlier notes"),
		mcp.WithString("vendor_id", mcp.Required(), mcp.Description("Vendor ID")),
		mcp.WithString("notes", mcp.Required(), mcp.Description("Note text")),
	)
	s.AddTool(list, vh.handleList)
	s.AddTool(get, vh.handleGet)
	s.AddTool(approve, vh.handleApprove)
	s.AddTool(reject, vh.handleReject)
	s.AddTool(notes, vh.handleNotes)
	return nil
}

func (vh *VendorHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := client.VendorFilter{
		Search: stringArg(req, "search"),
		Page:   intArg(req, "page", 1<<20),
		Limit:  intArg(req, "limit", maxPageSize),
	}
	log.Debug().Str("search", f.Search).Int("page", f.Page).Msg("list_vendors invoked")

	page, err := vh.client.ListVendors(ctx, f)
	if err != nil {
		return toolError("list_vendors", err), nil
	}
	return jsonResult(map[string]any{
		"vendors":    page.Data,
		"pagination": page.Pagination,
		"stats":      client.SummarizeVendors(page.Data),
	})
}

func (vh *VendorHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("vendor_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := vh.client.GetVendor(ctx, id)
	if err != nil {
		return toolError("get_vendor", err), nil
	}
	return jsonResult(v)
}

func (vh *VendorHandler) handleApprove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("vendor_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.Debug().Str("vendor_id", id).Msg("approve_vendor invoked")

	if err := vh.client.ApproveVendor(ctx, id); err != nil {
		return toolError("approve_vendor", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("vendor %s approved", id)), nil
}

func (vh *VendorHandler) handleReject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("vendor_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.Debug().Str("vendor_id", id).Msg("reject_vendor invoked")

	if err := vh.client.RejectVendor(ctx, id); err != nil {
		return toolError("reject_vendor", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("vendor %s rejected", id)), nil
}

func (vh *VendorHandler) handleNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("vendor_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	notes := stringArg(req, "notes")

	if err := vh.client.SaveVendorNotes(ctx, id, notes); err != nil {
		return toolError("save_vendor_notes", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("notes saved for vendor %s", id)), nil
}
