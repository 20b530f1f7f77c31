package query

import (
	"unicode/utf8"

	"github.com/strandhq/strand/internal/errors"
)

// Filters holds the structured query parameters accepted by list
// operations. Nil / empty fields mean "not filtered".
type Filters struct {
	IsPalindrome *bool
	MinLength    *int
	MaxLength    *int
	WordCount    *int
	ContainsChar string
}

// Conditions translates the filters into a predicate set.
// contains_character must be exactly one character; a violation is a
// validation error, reported distinctly from an empty result. Length
// bounds are taken as given: min > max is a legal range that matches
// nothing, not an input error.
func (f Filters) Conditions() (Set, error) {
	var set Set

	if f.IsPalindrome != nil {
		set = append(set, Condition{
			Kind:  KindBool,
			Field: FieldIsPalindrome,
			Bool:  *f.IsPalindrome,
		})
	}
	if f.MinLength != nil || f.MaxLength != nil {
		set = append(set, Condition{
			Kind:  KindIntRange,
			Field: FieldLength,
			Min:   f.MinLength,
			Max:   f.MaxLength,
		})
	}
	if f.WordCount != nil {
		set = append(set, Condition{
			Kind:  KindIntEq,
			Field: FieldWordCount,
			Int:   *f.WordCount,
		})
	}
	if f.ContainsChar != "" {
		if utf8.RuneCountInString(f.ContainsChar) != 1 {
			return nil, errors.NewInvalidRequest("invalid value for 'contains_character': must be a single character")
		}
		set = append(set, Condition{
			Kind: KindCharContains,
			Char: f.ContainsChar,
		})
	}

	return set, nil
}
