package ops

import (
	"context"
	"database/sql"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/db"
	"github.com/strandhq/strand/internal/query"
)

// ListInput contains the structured filter parameters for List.
// All fields are optional; no filters means every stored record.
type ListInput struct {
	Filters query.Filters
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Data           []analysis.Record `json:"data"`
	Count          int               `json:"count"`
	FiltersApplied map[string]any    `json:"filters_applied"`
}

// List scans the store and returns, in insertion order, every record
// whose properties satisfy the filters.
func List(ctx context.Context, database *sql.DB, input ListInput) (*ListOutput, error) {
	set, err := input.Filters.Conditions()
	if err != nil {
		return nil, err
	}

	records, err := db.All(ctx, database)
	if err != nil {
		return nil, err
	}

	matched := query.Apply(records, set)
	return &ListOutput{
		Data:           matched,
		Count:          len(matched),
		FiltersApplied: set.Describe(),
	}, nil
}
