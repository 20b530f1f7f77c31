package web

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/strandhq/strand/internal/config"
	"github.com/strandhq/strand/internal/errors"
	"github.com/strandhq/strand/internal/ops"
	"github.com/strandhq/strand/internal/query"
)

// Handlers contains HTTP route handlers for the Strand API.
type Handlers struct {
	db      *sql.DB
	cfg     *config.Config
	version string
}

// HandleHealth handles GET /. Liveness check.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleCreate handles POST /strings: analyze and store a new string.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	value, err := decodeValueBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := ops.Create(r.Context(), h.db, h.cfg, ops.CreateInput{Value: value})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// HandleFetch handles GET /strings/{value}: look up a stored string by
// its exact value.
func (h *Handlers) HandleFetch(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")

	result, err := ops.Fetch(r.Context(), h.db, ops.FetchInput{Value: value})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleDelete handles DELETE /strings/{value}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")

	result, err := ops.Delete(r.Context(), h.db, ops.DeleteInput{Value: value})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleList handles GET /strings: list stored strings, optionally
// filtered by query parameters.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := ops.List(r.Context(), h.db, ops.ListInput{Filters: *filters})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleAsk handles GET /strings/filter-by-natural-language: filter
// stored strings with an English sentence.
func (h *Handlers) HandleAsk(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Ask(r.Context(), h.db, ops.AskInput{
		Query: r.URL.Query().Get("query"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleAnalyze handles POST /strings/analyze: compute properties
// without storing.
func (h *Handlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	value, err := decodeValueBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := ops.Analyze(h.cfg, ops.AnalyzeInput{Value: value})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// decodeValueBody extracts the "value" field from a JSON request body.
// A missing field and a present-but-non-string field are distinct
// failures (INVALID_REQUEST vs INVALID_TYPE).
func decodeValueBody(r *http.Request) (string, error) {
	var body struct {
		Value *json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", errors.NewInvalidRequest("request body must be valid JSON")
	}
	if body.Value == nil {
		return "", errors.NewInvalidRequest("value is required")
	}

	var value string
	if err := json.Unmarshal(*body.Value, &value); err != nil {
		return "", errors.NewInvalidType("value must be a string")
	}
	return value, nil
}

// parseFilters builds query filters from URL parameters.
func parseFilters(r *http.Request) (*query.Filters, error) {
	filters := &query.Filters{
		ContainsChar: r.URL.Query().Get("contains_character"),
	}

	var err error
	if filters.IsPalindrome, err = parseBoolParam(r, "is_palindrome"); err != nil {
		return nil, err
	}
	if filters.MinLength, err = parseIntParam(r, "min_length"); err != nil {
		return nil, err
	}
	if filters.MaxLength, err = parseIntParam(r, "max_length"); err != nil {
		return nil, err
	}
	if filters.WordCount, err = parseIntParam(r, "word_count"); err != nil {
		return nil, err
	}

	return filters, nil
}

// parseIntParam parses an optional integer query parameter.
func parseIntParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("%s must be an integer", name))
	}
	return &n, nil
}

// parseBoolParam parses an optional boolean query parameter.
func parseBoolParam(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("%s must be true or false", name))
	}
	return &b, nil
}
