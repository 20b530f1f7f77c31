package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// decode converts the raw argument map of an MCP call into the typed
// request struct for a tool. The round trip through JSON applies the
// same field names and type coercions the tool schema advertises, so a
// mismatched argument surfaces as one decode error instead of a
// scattering of type assertions.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var out T

	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return out, fmt.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("unmarshal args: %w", err)
	}

	return out, nil
}
