package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/db"
	"github.com/strandhq/strand/internal/errors"
	"github.com/strandhq/strand/internal/nlq"
	"github.com/strandhq/strand/internal/query"
)

// AskInput contains parameters for the Ask operation.
type AskInput struct {
	Query string
}

// AskOutput contains the result of the Ask operation.
type AskOutput struct {
	Data             []analysis.Record `json:"data"`
	Count            int               `json:"count"`
	InterpretedQuery *nlq.Interpreted  `json:"interpreted_query"`
}

// Ask filters the store by a restricted natural-language sentence. The
// sentence is translated into the same predicate set List uses; a
// sentence the grammar does not recognize fails with UNPARSEABLE_QUERY
// rather than matching everything.
func Ask(ctx context.Context, database *sql.DB, input AskInput) (*AskOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}

	set, interpreted, err := nlq.Translate(input.Query)
	if err != nil {
		return nil, err
	}

	records, err := db.All(ctx, database)
	if err != nil {
		return nil, err
	}

	matched := query.Apply(records, set)
	return &AskOutput{
		Data:             matched,
		Count:            len(matched),
		InterpretedQuery: interpreted,
	}, nil
}
