package ops

import (
	"context"
	"database/sql"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/db"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	Value string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	Hash    string `json:"id"`
}

// Delete removes a stored record by value. NOT_FOUND if the value was
// never stored (or already deleted).
func Delete(ctx context.Context, database *sql.DB, input DeleteInput) (*DeleteOutput, error) {
	hash := analysis.ContentHash(input.Value)
	if err := db.Delete(ctx, database, hash); err != nil {
		return nil, err
	}

	return &DeleteOutput{
		Deleted: true,
		Hash:    hash,
	}, nil
}
