package query

import "github.com/strandhq/strand/internal/analysis"

// Apply filters records through the predicate set, preserving the store's
// iteration order. Always returns a non-nil slice so surfaces encode an
// empty JSON array rather than null.
func Apply(records []analysis.Record, set Set) []analysis.Record {
	matched := make([]analysis.Record, 0, len(records))
	for _, rec := range records {
		if set.Matches(rec.Properties) {
			matched = append(matched, rec)
		}
	}
	return matched
}
