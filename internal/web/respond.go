package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/strandhq/strand/internal/errors"
)

// errorBody is the JSON envelope for error responses.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
	Details map[string]any   `json:"details,omitempty"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError maps a StrandError to its HTTP status and envelope.
// Internal error details are logged, not exposed.
func writeError(w http.ResponseWriter, err error) {
	sErr, ok := err.(*errors.StrandError)
	if !ok {
		sErr = errors.NewInternal(err)
	}

	if sErr.Code == errors.ErrInternal {
		log.Printf("internal error: %s", sErr.Message)
		writeJSON(w, sErr.Status, errorBody{Error: errorDetail{
			Code:    sErr.Code,
			Message: "internal error",
		}})
		return
	}

	writeJSON(w, sErr.Status, errorBody{Error: errorDetail{
		Code:    sErr.Code,
		Message: sErr.Message,
		Details: sErr.Details,
	}})
}
