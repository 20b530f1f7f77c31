package nlq

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/strandhq/strand/internal/errors"
	"github.com/strandhq/strand/internal/query"
)

// Rule is one independent matcher in the query grammar. It scans an
// already-lowercased sentence and returns the conditions it recognized,
// or an empty set when the pattern is absent. Rules never see each
// other's output; the translator folds their results into one set.
type Rule struct {
	Name  string
	Apply func(sentence string) (query.Set, error)
}

// rules is the fixed grammar, applied in order. Adding a pattern means
// appending a rule here plus a test alongside.
var rules = []Rule{
	{Name: "palindrome", Apply: palindromeRule},
	{Name: "word_count", Apply: wordCountRule},
	{Name: "longer_than", Apply: longerThanRule},
	{Name: "shorter_than", Apply: shorterThanRule},
	{Name: "exact_length", Apply: exactLengthRule},
	{Name: "contains_letter", Apply: containsLetterRule},
	{Name: "first_vowel", Apply: firstVowelRule},
}

var (
	wordCountRe   = regexp.MustCompile(`\b(one|two|three|four|five|single|\d+)\s+words?\b`)
	longerThanRe  = regexp.MustCompile(`longer than (\d+)`)
	shorterThanRe = regexp.MustCompile(`shorter than (\d+)`)
	exactLengthRe = regexp.MustCompile(`exactly (\d+) characters`)
	containsRe    = regexp.MustCompile(`contain(?:s|ing)? (?:the letter )?([a-z])\b`)
)

// numberWords maps the spelled-out counts the grammar accepts.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "single": 1,
}

// palindromeRule matches any "palindrom*" token (palindrome, palindromic,
// palindromes) and asks for palindromes only.
func palindromeRule(sentence string) (query.Set, error) {
	if !strings.Contains(sentence, "palindrom") {
		return nil, nil
	}
	return query.Set{{Kind: query.KindBool, Field: query.FieldIsPalindrome, Bool: true}}, nil
}

// wordCountRule matches "<N> word(s)" where N is a digit string or a
// spelled-out count.
func wordCountRule(sentence string) (query.Set, error) {
	m := wordCountRe.FindStringSubmatch(sentence)
	if m == nil {
		return nil, nil
	}

	n, ok := numberWords[m[1]]
	if !ok {
		var err error
		n, err = parseCount(m[1])
		if err != nil {
			return nil, err
		}
	}

	return query.Set{{Kind: query.KindIntEq, Field: query.FieldWordCount, Int: n}}, nil
}

// longerThanRule matches "longer than N": strictly longer, so the lower
// bound is N+1.
func longerThanRule(sentence string) (query.Set, error) {
	m := longerThanRe.FindStringSubmatch(sentence)
	if m == nil {
		return nil, nil
	}
	n, err := parseCount(m[1])
	if err != nil {
		return nil, err
	}
	min := n + 1
	return query.Set{{Kind: query.KindIntRange, Field: query.FieldLength, Min: &min}}, nil
}

// shorterThanRule matches "shorter than N": strictly shorter, upper bound N-1.
func shorterThanRule(sentence string) (query.Set, error) {
	m := shorterThanRe.FindStringSubmatch(sentence)
	if m == nil {
		return nil, nil
	}
	n, err := parseCount(m[1])
	if err != nil {
		return nil, err
	}
	max := n - 1
	return query.Set{{Kind: query.KindIntRange, Field: query.FieldLength, Max: &max}}, nil
}

// exactLengthRule matches "exactly N characters" as a degenerate range.
func exactLengthRule(sentence string) (query.Set, error) {
	m := exactLengthRe.FindStringSubmatch(sentence)
	if m == nil {
		return nil, nil
	}
	n, err := parseCount(m[1])
	if err != nil {
		return nil, err
	}
	min, max := n, n
	return query.Set{{Kind: query.KindIntRange, Field: query.FieldLength, Min: &min, Max: &max}}, nil
}

// containsLetterRule matches "contains X" / "containing the letter X"
// for a single standalone letter.
func containsLetterRule(sentence string) (query.Set, error) {
	m := containsRe.FindStringSubmatch(sentence)
	if m == nil {
		return nil, nil
	}
	return query.Set{{Kind: query.KindCharContains, Char: m[1]}}, nil
}

// firstVowelRule maps "first vowel" to containment of 'a'.
func firstVowelRule(sentence string) (query.Set, error) {
	if !strings.Contains(sentence, "first vowel") {
		return nil, nil
	}
	return query.Set{{Kind: query.KindCharContains, Char: "a"}}, nil
}

// parseCount parses a numeric literal from a recognized pattern. The
// regexes only capture digit runs, so the literal is non-negative by
// construction; a failure here (overflow) is a validation error, not a
// silently dropped filter.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewInvalidRequest("invalid number " + strconv.Quote(s) + " in query")
	}
	return n, nil
}
