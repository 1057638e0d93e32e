package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/PSchristopher/phoenix-admin/client/internal/types"
)

// ErrNoToken is returned when the login reply carries no credential.
var ErrNoToken = errors.New("login: response carried no token")

// Login exchanges admin credentials for a bearer token on the public surface.
// The caller stores the token; this package never touches session state.
func Login(ctx context.Context, r Requester, req types.LoginRequest) (*types.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateLogin(req); err != nil {
		return nil, err
	}
	resp, err := r.PublicRequest(ctx, http.MethodPost, "/admin/login", req, nil)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	// Accept {"token": ...} and {"data": {"token": ...}}.
	var payload struct {
		types.LoginResponse
		Data *types.LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, fmt.Errorf("login: decode: %w", err)
	}
	out := payload.LoginResponse
	if out.Token == "" && payload.Data != nil {
		out = *payload.Data
	}
	if out.Token == "" {
		return nil, ErrNoToken
	}
	return &out, nil
}
