// Package nlq translates a restricted natural-language sentence into a
// predicate set. The grammar is a fixed list of pattern-match rules, not
// a statistical model; anything outside it is rejected rather than
// guessed at.
package nlq

import (
	"strings"

	"github.com/strandhq/strand/internal/errors"
	"github.com/strandhq/strand/internal/query"
)

// Interpreted echoes back how a sentence was understood.
type Interpreted struct {
	Original      string         `json:"original"`
	ParsedFilters map[string]any `json:"parsed_filters"`
}

// Translate runs every rule over the sentence and folds the recognized
// conditions into one predicate set (logical AND). A sentence matching
// no rule fails with UNPARSEABLE_QUERY: "understood nothing" must never
// degrade into "match everything". Single-pass and stateless.
func Translate(sentence string) (query.Set, *Interpreted, error) {
	lower := strings.ToLower(sentence)

	var set query.Set
	for _, rule := range rules {
		conds, err := rule.Apply(lower)
		if err != nil {
			return nil, nil, err
		}
		set = append(set, conds...)
	}

	if len(set) == 0 {
		return nil, nil, errors.NewUnparseableQuery(sentence)
	}
	if err := set.Validate(); err != nil {
		return nil, nil, err
	}

	return set, &Interpreted{
		Original:      sentence,
		ParsedFilters: set.Describe(),
	}, nil
}
