package nlq

import (
	"testing"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/errors"
	"github.com/strandhq/strand/internal/query"
)

func TestTranslate_Palindrome(t *testing.T) {
	set, interp, err := Translate("Show me palindromic strings")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("got %d conditions, want 1", len(set))
	}
	if !set.Matches(analysis.Analyze("racecar")) {
		t.Error("racecar should match")
	}
	if set.Matches(analysis.Analyze("hello")) {
		t.Error("hello should not match")
	}
	if interp.ParsedFilters["is_palindrome"] != true {
		t.Errorf("parsed_filters = %v, want is_palindrome true", interp.ParsedFilters)
	}
}

func TestTranslate_ExactWordCount(t *testing.T) {
	set, interp, err := Translate("Find strings with exactly 5 words")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if interp.ParsedFilters["word_count"] != 5 {
		t.Errorf("parsed_filters = %v, want word_count 5", interp.ParsedFilters)
	}
	if !set.Matches(analysis.Analyze("a b c d e")) {
		t.Error("five-word value should match")
	}
	if set.Matches(analysis.Analyze("a b c")) {
		t.Error("three-word value should not match")
	}
}

func TestTranslate_NumberWords(t *testing.T) {
	tests := []struct {
		sentence string
		want     int
	}{
		{"strings with one word", 1},
		{"strings with a single word", 1},
		{"give me two word strings", 2},
		{"five words please", 5},
		{"strings with 12 words", 12},
	}

	for _, tt := range tests {
		_, interp, err := Translate(tt.sentence)
		if err != nil {
			t.Errorf("Translate(%q) failed: %v", tt.sentence, err)
			continue
		}
		if interp.ParsedFilters["word_count"] != tt.want {
			t.Errorf("Translate(%q) word_count = %v, want %d", tt.sentence, interp.ParsedFilters["word_count"], tt.want)
		}
	}
}

func TestTranslate_LongerThan(t *testing.T) {
	set, interp, err := Translate("strings longer than 10 characters")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	// Strict inequality: min = 11
	if interp.ParsedFilters["min_length"] != 11 {
		t.Errorf("min_length = %v, want 11", interp.ParsedFilters["min_length"])
	}
	if set.Matches(analysis.Analyze("exactly10!")) {
		t.Error("length-10 value should not match 'longer than 10'")
	}
	if !set.Matches(analysis.Analyze("elevenchars")) {
		t.Error("length-11 value should match")
	}
}

func TestTranslate_ShorterThan(t *testing.T) {
	_, interp, err := Translate("strings shorter than 4 characters")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if interp.ParsedFilters["max_length"] != 3 {
		t.Errorf("max_length = %v, want 3", interp.ParsedFilters["max_length"])
	}
}

func TestTranslate_ExactCharacters(t *testing.T) {
	set, interp, err := Translate("strings with exactly 7 characters")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if interp.ParsedFilters["min_length"] != 7 || interp.ParsedFilters["max_length"] != 7 {
		t.Errorf("parsed_filters = %v, want min=max=7", interp.ParsedFilters)
	}
	if !set.Matches(analysis.Analyze("racecar")) {
		t.Error("racecar has exactly 7 characters")
	}
}

func TestTranslate_ContainsLetter(t *testing.T) {
	for _, sentence := range []string{
		"strings containing the letter z",
		"strings that contain the letter z",
		"contains z",
	} {
		_, interp, err := Translate(sentence)
		if err != nil {
			t.Errorf("Translate(%q) failed: %v", sentence, err)
			continue
		}
		if interp.ParsedFilters["contains_character"] != "z" {
			t.Errorf("Translate(%q) = %v, want contains_character z", sentence, interp.ParsedFilters)
		}
	}
}

func TestTranslate_FirstVowel(t *testing.T) {
	set, _, err := Translate("strings with the first vowel")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if !set.Matches(analysis.Analyze("banana")) {
		t.Error("banana contains 'a'")
	}
	if set.Matches(analysis.Analyze("hello")) {
		t.Error("hello does not contain 'a'")
	}
}

func TestTranslate_CombinedPatterns(t *testing.T) {
	set, interp, err := Translate("Palindromic strings longer than 3 characters containing the letter c")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("got %d conditions, want 3: %v", len(set), interp.ParsedFilters)
	}
	if !set.Matches(analysis.Analyze("racecar")) {
		t.Error("racecar satisfies all three")
	}
	if set.Matches(analysis.Analyze("cabbage")) {
		t.Error("cabbage is not a palindrome")
	}
	if set.Matches(analysis.Analyze("pop")) {
		t.Error("pop is too short and has no c")
	}
}

func TestTranslate_Unrecognized(t *testing.T) {
	_, _, err := Translate("banana bread")
	if !errors.Is(err, errors.ErrUnparseableQuery) {
		t.Fatalf("err = %v, want UNPARSEABLE_QUERY", err)
	}

	_, _, err = Translate("")
	if !errors.Is(err, errors.ErrUnparseableQuery) {
		t.Fatalf("empty sentence: err = %v, want UNPARSEABLE_QUERY", err)
	}
}

func TestTranslate_ConflictingBounds(t *testing.T) {
	_, _, err := Translate("strings longer than 10 and shorter than 5")
	if !errors.Is(err, errors.ErrConflictingFilters) {
		t.Fatalf("err = %v, want CONFLICTING_FILTERS", err)
	}
}

func TestTranslate_OverflowingNumber(t *testing.T) {
	_, _, err := Translate("strings longer than 99999999999999999999 characters")
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestTranslate_CaseInsensitiveKeywords(t *testing.T) {
	_, interp, err := Translate("SHOW ME PALINDROMES LONGER THAN 2")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if interp.ParsedFilters["is_palindrome"] != true || interp.ParsedFilters["min_length"] != 3 {
		t.Errorf("parsed_filters = %v", interp.ParsedFilters)
	}
}

func TestRules_IndependentlyMatchable(t *testing.T) {
	// Each rule sees only the sentence, never another rule's output.
	set, err := rules[0].Apply("palindromes")
	if err != nil || len(set) != 1 {
		t.Fatalf("palindrome rule: set=%v err=%v", set, err)
	}
	if set[0].Kind != query.KindBool {
		t.Errorf("kind = %v, want bool", set[0].Kind)
	}

	set, err = rules[1].Apply("no numbers here")
	if err != nil || set != nil {
		t.Fatalf("word_count rule should not match: set=%v err=%v", set, err)
	}
}
