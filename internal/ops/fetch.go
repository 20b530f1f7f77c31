package ops

import (
	"context"
	"database/sql"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/db"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	Value string
}

// Fetch looks up a stored record by value. The hash is recomputed from
// the value on every call; it is never accepted from the caller.
func Fetch(ctx context.Context, database *sql.DB, input FetchInput) (*analysis.Record, error) {
	return db.GetByHash(ctx, database, analysis.ContentHash(input.Value))
}
