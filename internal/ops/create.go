package ops

import (
	"context"
	"database/sql"
	"time"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/config"
	"github.com/strandhq/strand/internal/db"
)

// CreateInput contains parameters for the Create operation.
type CreateInput struct {
	Value string
}

// Create analyzes a value and inserts it into the store. The content hash
// of the value is the record identity: inserting the same value twice
// fails with ALREADY_EXISTS and leaves the store untouched.
func Create(ctx context.Context, database *sql.DB, cfg *config.Config, input CreateInput) (*analysis.Record, error) {
	if err := validateValue(cfg, input.Value); err != nil {
		return nil, err
	}

	rec := analysis.NewRecord(input.Value, time.Now())
	if err := db.Insert(ctx, database, rec); err != nil {
		return nil, err
	}

	return rec, nil
}
