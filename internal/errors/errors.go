package errors

import "fmt"

// ErrorCode represents a Strand error code.
type ErrorCode string

const (
	ErrInvalidRequest     ErrorCode = "INVALID_REQUEST"     // 400
	ErrUnparseableQuery   ErrorCode = "UNPARSEABLE_QUERY"   // 400
	ErrNotFound           ErrorCode = "NOT_FOUND"           // 404
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"      // 409
	ErrValueTooLarge      ErrorCode = "VALUE_TOO_LARGE"     // 413
	ErrInvalidType        ErrorCode = "INVALID_TYPE"        // 422
	ErrConflictingFilters ErrorCode = "CONFLICTING_FILTERS" // 422
	ErrInternal           ErrorCode = "INTERNAL"            // 500
)

// StrandError represents a structured error with code, status, and details.
type StrandError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *StrandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *StrandError {
	return &StrandError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnparseableQuery creates a 400 error for a natural-language sentence
// that matched none of the known query patterns. Distinct from
// INVALID_REQUEST: the sentence itself was fine, it just wasn't understood.
func NewUnparseableQuery(sentence string) *StrandError {
	return &StrandError{
		Code:    ErrUnparseableQuery,
		Status:  400,
		Message: "unable to parse natural language query",
		Details: map[string]any{"query": sentence},
	}
}

// NewNotFound creates a 404 error for when a string is not in the store.
func NewNotFound(hash string) *StrandError {
	return &StrandError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "string does not exist in the system",
		Details: map[string]any{"sha256_hash": hash},
	}
}

// NewFileNotFound creates a 404 error for a missing import/export file.
func NewFileNotFound(path string) *StrandError {
	return &StrandError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewAlreadyExists creates a 409 error for a duplicate content hash.
func NewAlreadyExists(hash string) *StrandError {
	return &StrandError{
		Code:    ErrAlreadyExists,
		Status:  409,
		Message: "string already exists in the system",
		Details: map[string]any{"sha256_hash": hash},
	}
}

// NewValueTooLarge creates a 413 error when a value exceeds the size limit.
func NewValueTooLarge(max, actual int) *StrandError {
	return &StrandError{
		Code:    ErrValueTooLarge,
		Status:  413,
		Message: fmt.Sprintf("value exceeds maximum size: %d chars (max %d)", actual, max),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewInvalidType creates a 422 error for a value of the wrong type.
func NewInvalidType(msg string) *StrandError {
	return &StrandError{
		Code:    ErrInvalidType,
		Status:  422,
		Message: msg,
	}
}

// NewConflictingFilters creates a 422 error when a query parses into
// mutually exclusive length bounds.
func NewConflictingFilters(min, max int) *StrandError {
	return &StrandError{
		Code:    ErrConflictingFilters,
		Status:  422,
		Message: fmt.Sprintf("min_length (%d) cannot be greater than max_length (%d)", min, max),
		Details: map[string]any{"min_length": min, "max_length": max},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *StrandError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &StrandError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a StrandError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*StrandError); ok {
		return sErr.Code == code
	}
	return false
}
