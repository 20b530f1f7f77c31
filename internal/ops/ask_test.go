package ops

import (
	"context"
	"testing"

	"github.com/strandhq/strand/internal/errors"
)

func TestAsk_Palindromes(t *testing.T) {
	database := newTestDB(t)
	mustCreate(t, database, "racecar", "hello", "abba")

	out, err := Ask(context.Background(), database, AskInput{Query: "Show me palindromic strings"})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}
	if out.Data[0].Value != "racecar" || out.Data[1].Value != "abba" {
		t.Errorf("unexpected matches: %q, %q", out.Data[0].Value, out.Data[1].Value)
	}
	if out.InterpretedQuery.Original != "Show me palindromic strings" {
		t.Errorf("Original = %q", out.InterpretedQuery.Original)
	}
	if out.InterpretedQuery.ParsedFilters["is_palindrome"] != true {
		t.Errorf("ParsedFilters = %v", out.InterpretedQuery.ParsedFilters)
	}
}

func TestAsk_CombinedSentence(t *testing.T) {
	database := newTestDB(t)
	mustCreate(t, database, "pop", "racecar", "stats machine")

	out, err := Ask(context.Background(), database, AskInput{
		Query: "palindromic strings longer than 3 characters",
	})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if out.Count != 1 || out.Data[0].Value != "racecar" {
		t.Fatalf("got %d matches, want just racecar", out.Count)
	}
}

func TestAsk_Unrecognized(t *testing.T) {
	database := newTestDB(t)
	mustCreate(t, database, "anything")

	_, err := Ask(context.Background(), database, AskInput{Query: "banana bread"})
	if !errors.Is(err, errors.ErrUnparseableQuery) {
		t.Fatalf("err = %v, want UNPARSEABLE_QUERY (not an empty match-all)", err)
	}
}

func TestAsk_MissingQuery(t *testing.T) {
	database := newTestDB(t)

	_, err := Ask(context.Background(), database, AskInput{Query: "   "})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestAsk_ConflictingBounds(t *testing.T) {
	database := newTestDB(t)

	_, err := Ask(context.Background(), database, AskInput{
		Query: "strings longer than 10 and shorter than 5",
	})
	if !errors.Is(err, errors.ErrConflictingFilters) {
		t.Fatalf("err = %v, want CONFLICTING_FILTERS", err)
	}
}
