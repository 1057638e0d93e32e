package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/PSchristopher/phoenix-admin/client"
)

const maxPageSize = 100

// jsonResult renders v as the text content of a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// toolError converts a client failure into a tool-level error so the model
// sees it instead of a protocol fault.
func toolError(tool string, err error) *mcp.CallToolResult {
	log.Error().Err(err).Str("tool", tool).Msg("tool failed")
	if client.IsUnauthorized(err) {
		return mcp.NewToolResultError("session expired: call the login tool and retry")
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err))
}

func stringArg(req mcp.CallToolRequest, key string) string {
	if v, ok := req.GetArguments()[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// intArg reads a JSON number argument, ignoring values outside [1, max].
func intArg(req mcp.CallToolRequest, key string, max int) int {
	if v, ok := req.GetArguments()[key].(float64); ok {
		if v >= 1 && v <= float64(max) {
			return int(v)
		}
	}
	return 0
}

func boolArg(req mcp.CallToolRequest, key string) bool {
	v, _ := req.GetArguments()[key].(bool)
	return v
}

// stringListArg accepts either a JSON array of strings or a comma-separated
// string.
func stringListArg(req mcp.CallToolRequest, key string) []string {
	var out []string
	switch v := req.GetArguments()[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
