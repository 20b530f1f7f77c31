package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/strandhq/strand/internal/config"
	"github.com/strandhq/strand/internal/db"
)

// testSetup creates a temporary database and config for testing.
func testSetup(t *testing.T) (*sql.DB, *config.Config) {
	t.Helper()

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cfg := config.DefaultConfig()
	cfg.AllowUnsafePaths = true // Allow temp dirs in tests

	return database, cfg
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// resultJSON unmarshals the text payload of a tool result.
func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("payload is not JSON: %v\n%s", err, text.Text)
	}
	return payload
}

// errorCode extracts the error code from an IsError result.
func errorCode(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	payload := resultJSON(t, result)
	errObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Fatalf("no error object in %v", payload)
	}
	code, _ := errObj["code"].(string)
	return code
}

func TestHandleStoreAndFetch(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)
	ctx := context.Background()

	result, err := h.HandleStore(ctx, makeRequest(map[string]any{"value": "racecar"}))
	if err != nil {
		t.Fatalf("HandleStore failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("store errored: %v", resultJSON(t, result))
	}
	stored := resultJSON(t, result)
	props, _ := stored["properties"].(map[string]any)
	if props["is_palindrome"] != true {
		t.Errorf("properties = %v", props)
	}

	result, err = h.HandleFetch(ctx, makeRequest(map[string]any{"value": "racecar"}))
	if err != nil {
		t.Fatalf("HandleFetch failed: %v", err)
	}
	fetched := resultJSON(t, result)
	if fetched["id"] != stored["id"] {
		t.Errorf("fetch id = %v, store id = %v", fetched["id"], stored["id"])
	}
}

func TestHandleStore_Duplicate(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)
	ctx := context.Background()

	h.HandleStore(ctx, makeRequest(map[string]any{"value": "once"}))
	result, err := h.HandleStore(ctx, makeRequest(map[string]any{"value": "once"}))
	if err != nil {
		t.Fatalf("HandleStore failed: %v", err)
	}
	if code := errorCode(t, result); code != "ALREADY_EXISTS" {
		t.Errorf("code = %q", code)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)

	result, err := h.HandleDelete(context.Background(), makeRequest(map[string]any{"value": "absent"}))
	if err != nil {
		t.Fatalf("HandleDelete failed: %v", err)
	}
	if code := errorCode(t, result); code != "NOT_FOUND" {
		t.Errorf("code = %q", code)
	}
}

func TestHandleList_Filtered(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)
	ctx := context.Background()

	for _, v := range []string{"abc", "abcde", "abcdefghij"} {
		h.HandleStore(ctx, makeRequest(map[string]any{"value": v}))
	}

	result, err := h.HandleList(ctx, makeRequest(map[string]any{"min_length": 5}))
	if err != nil {
		t.Fatalf("HandleList failed: %v", err)
	}
	payload := resultJSON(t, result)
	if payload["count"] != float64(2) {
		t.Errorf("count = %v, want 2", payload["count"])
	}
}

func TestHandleQuery(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)
	ctx := context.Background()

	h.HandleStore(ctx, makeRequest(map[string]any{"value": "level"}))
	h.HandleStore(ctx, makeRequest(map[string]any{"value": "plain text"}))

	result, err := h.HandleQuery(ctx, makeRequest(map[string]any{
		"query": "show me palindromic strings",
	}))
	if err != nil {
		t.Fatalf("HandleQuery failed: %v", err)
	}
	payload := resultJSON(t, result)
	if payload["count"] != float64(1) {
		t.Errorf("count = %v, want 1", payload["count"])
	}
	interp, _ := payload["interpreted_query"].(map[string]any)
	if interp == nil || interp["parsed_filters"] == nil {
		t.Errorf("interpreted_query = %v", interp)
	}
}

func TestHandleQuery_Unparseable(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)

	result, err := h.HandleQuery(context.Background(), makeRequest(map[string]any{
		"query": "banana bread",
	}))
	if err != nil {
		t.Fatalf("HandleQuery failed: %v", err)
	}
	if code := errorCode(t, result); code != "UNPARSEABLE_QUERY" {
		t.Errorf("code = %q", code)
	}
}

func TestHandleAnalyze_DoesNotStore(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)
	ctx := context.Background()

	result, err := h.HandleAnalyze(ctx, makeRequest(map[string]any{"value": "peek"}))
	if err != nil {
		t.Fatalf("HandleAnalyze failed: %v", err)
	}
	payload := resultJSON(t, result)
	if payload["length"] != float64(4) {
		t.Errorf("length = %v", payload["length"])
	}

	result, _ = h.HandleFetch(ctx, makeRequest(map[string]any{"value": "peek"}))
	if code := errorCode(t, result); code != "NOT_FOUND" {
		t.Errorf("analyze must not store; fetch code = %q", code)
	}
}

func TestHandleExportImport(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)
	ctx := context.Background()

	h.HandleStore(ctx, makeRequest(map[string]any{"value": "keep me"}))

	path := filepath.Join(t.TempDir(), "mcp.jsonl")
	result, err := h.HandleExport(ctx, makeRequest(map[string]any{"path": path}))
	if err != nil {
		t.Fatalf("HandleExport failed: %v", err)
	}
	exported := resultJSON(t, result)
	if exported["count"] != float64(1) {
		t.Errorf("export count = %v", exported["count"])
	}

	target, targetCfg := testSetup(t)
	th := NewHandlers(target, targetCfg)
	result, err = th.HandleImport(ctx, makeRequest(map[string]any{"path": path}))
	if err != nil {
		t.Fatalf("HandleImport failed: %v", err)
	}
	imported := resultJSON(t, result)
	if imported["imported"] != float64(1) || imported["skipped"] != float64(0) {
		t.Errorf("import result = %v", imported)
	}
}

func TestHandleImport_BadMode(t *testing.T) {
	database, cfg := testSetup(t)
	h := NewHandlers(database, cfg)

	result, err := h.HandleImport(context.Background(), makeRequest(map[string]any{
		"path": "in.jsonl",
		"mode": "replace",
	}))
	if err != nil {
		t.Fatalf("HandleImport failed: %v", err)
	}
	if code := errorCode(t, result); code != "INVALID_REQUEST" {
		t.Errorf("code = %q", code)
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"string_store", "string_purge"})
	if len(unknown) != 1 || unknown[0] != "string_purge" {
		t.Errorf("unknown = %v", unknown)
	}
}

func TestAllToolNames(t *testing.T) {
	names := AllToolNames()
	if len(names) != len(toolRegistry) {
		t.Errorf("len = %d, want %d", len(names), len(toolRegistry))
	}
}
