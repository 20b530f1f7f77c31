package query

import (
	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/errors"
)

// Field names a property of an analysis.Bundle that conditions can test.
type Field string

const (
	FieldLength       Field = "length"
	FieldIsPalindrome Field = "is_palindrome"
	FieldUniqueChars  Field = "unique_characters"
	FieldWordCount    Field = "word_count"
)

// Kind selects the comparison a condition performs.
type Kind string

const (
	KindBool         Kind = "bool"
	KindIntEq        Kind = "int_eq"
	KindIntRange     Kind = "int_range"
	KindCharContains Kind = "char_contains"
)

// Condition is one typed filter clause evaluated against a property bundle.
// Exactly the fields relevant to its Kind are populated.
type Condition struct {
	Kind  Kind
	Field Field
	Bool  bool   // KindBool: expected value
	Int   int    // KindIntEq: expected value
	Min   *int   // KindIntRange: inclusive lower bound, nil = unbounded
	Max   *int   // KindIntRange: inclusive upper bound, nil = unbounded
	Char  string // KindCharContains: single character
}

// Matches reports whether the bundle satisfies this condition.
func (c Condition) Matches(b analysis.Bundle) bool {
	switch c.Kind {
	case KindBool:
		return b.IsPalindrome == c.Bool
	case KindIntEq:
		return intField(b, c.Field) == c.Int
	case KindIntRange:
		v := intField(b, c.Field)
		if c.Min != nil && v < *c.Min {
			return false
		}
		if c.Max != nil && v > *c.Max {
			return false
		}
		return true
	case KindCharContains:
		return b.Frequency[c.Char] > 0
	}
	return false
}

// intField reads the integer property named by f.
func intField(b analysis.Bundle, f Field) int {
	switch f {
	case FieldLength:
		return b.Length
	case FieldUniqueChars:
		return b.UniqueChars
	case FieldWordCount:
		return b.WordCount
	}
	return 0
}

// Set is an ordered conjunction of conditions. An empty set matches
// every bundle.
type Set []Condition

// Matches reports whether the bundle satisfies every condition in the set.
func (s Set) Matches(b analysis.Bundle) bool {
	for _, c := range s {
		if !c.Matches(b) {
			return false
		}
	}
	return true
}

// Validate rejects sets whose effective length bounds exclude every
// possible value (min > max across all range conditions). Only the
// sentence-derived path calls this; structured filters keep such a
// range as a predicate that matches nothing.
func (s Set) Validate() error {
	var min, max *int
	for _, c := range s {
		if c.Kind != KindIntRange || c.Field != FieldLength {
			continue
		}
		if c.Min != nil && (min == nil || *c.Min > *min) {
			min = c.Min
		}
		if c.Max != nil && (max == nil || *c.Max < *max) {
			max = c.Max
		}
	}
	if min != nil && max != nil && *min > *max {
		return errors.NewConflictingFilters(*min, *max)
	}
	return nil
}

// Describe renders the set as the flat filter map echoed to clients
// (the filters_applied / parsed_filters response field).
func (s Set) Describe() map[string]any {
	out := make(map[string]any, len(s))
	for _, c := range s {
		switch c.Kind {
		case KindBool:
			out[string(c.Field)] = c.Bool
		case KindIntEq:
			out[string(c.Field)] = c.Int
		case KindIntRange:
			if c.Min != nil {
				out["min_"+string(c.Field)] = *c.Min
			}
			if c.Max != nil {
				out["max_"+string(c.Field)] = *c.Max
			}
		case KindCharContains:
			out["contains_character"] = c.Char
		}
	}
	return out
}
