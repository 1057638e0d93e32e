package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/session"
)

// SessionHandler exposes login, logout and session_status.
type SessionHandler struct {
	client *client.Client
	store  *session.Store
}

// NewSessionHandler returns a handler that logs in through c and records the
// credential in store. c must already be bound to store.
func NewSessionHandler(c *client.Client, store *session.Store) *SessionHandler {
	return &SessionHandler{client: c, store: store}
}

// RegisterTools registers session tools.
func (sh *SessionHandler) RegisterTools(s *server.MCPServer) error {
	status := mcp.NewTool("session_status",
		mcp.WithDescription("Report whether an admin session is active and what its credential claims"),
	)
	login := mcp.NewTool("login",
		mcp.WithDescription("Log in as an admin; the credential is kept by the server and never returned"),
		mcp.WithString("email", mcp.Required(), mcp.Description("Admin email")),
		mcp.WithString("password", mcp.Required(), mcp.Description("Admin password")),
	)
	logout := mcp.NewTool("logout",
		mcp.WithDescription("End the current admin session"),
	)
	s.AddTool(status, sh.handleStatus)
	s.AddTool(login, sh.handleLogin)
	s.AddTool(logout, sh.handleLogout)
	return nil
}

func (sh *SessionHandler) handleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec := sh.store.Current()
	if rec == nil {
		return jsonResult(map[string]any{"active": false})
	}
	out := map[string]any{
		"active":    true,
		"sessionId": rec.ID,
		"createdAt": rec.CreatedAt,
	}
	claims, err := sh.store.Claims()
	switch {
	case err == nil:
		out["email"] = claims.Email
		out["role"] = claims.Role
		out["expiresAt"] = claims.ExpiresAt
		out["expired"] = claims.Expired(time.Now())
	case errors.Is(err, session.ErrNotJWT):
	default:
		return toolError("session_status", err), nil
	}
	return jsonResult(out)
}

func (sh *SessionHandler) handleLogin(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	password, err := req.RequireString("password")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Str("email", email).Msg("login invoked")

	start := time.Now()
	resp, err := sh.client.Login(ctx, client.LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("login failed")
		return mcp.NewToolResultError(fmt.Sprintf("login failed: %v", err)), nil
	}
	rec, err := sh.store.Login(ctx, resp.Token)
	if err != nil {
		return toolError("login", err), nil
	}

	out := map[string]any{"sessionId": rec.ID}
	if resp.Admin != nil {
		out["admin"] = resp.Admin
	}
	return jsonResult(out)
}

func (sh *SessionHandler) handleLogout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := sh.store.Logout(ctx); err != nil {
		return toolError("logout", err), nil
	}
	return mcp.NewToolResultText("logged out"), nil
}
