package ops

import (
	"context"
	"strings"
	"testing"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/config"
	"github.com/strandhq/strand/internal/db"
	"github.com/strandhq/strand/internal/errors"
)

func TestCreate_HappyPath(t *testing.T) {
	database := newTestDB(t)
	cfg := config.DefaultConfig()

	rec, err := Create(context.Background(), database, cfg, CreateInput{Value: "hello world"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if rec.Hash != analysis.ContentHash("hello world") {
		t.Errorf("Hash = %q, want content hash of value", rec.Hash)
	}
	if rec.Properties.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", rec.Properties.WordCount)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	database := newTestDB(t)
	cfg := config.DefaultConfig()
	ctx := context.Background()

	if _, err := Create(ctx, database, cfg, CreateInput{Value: "twice"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := Create(ctx, database, cfg, CreateInput{Value: "twice"})
	if !errors.Is(err, errors.ErrAlreadyExists) {
		t.Fatalf("second Create err = %v, want ALREADY_EXISTS", err)
	}

	// Store count unchanged by the failed insert
	n, err := db.Count(ctx, database)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestCreate_EmptyStringIsValid(t *testing.T) {
	database := newTestDB(t)

	rec, err := Create(context.Background(), database, config.DefaultConfig(), CreateInput{Value: ""})
	if err != nil {
		t.Fatalf("Create of empty string failed: %v", err)
	}
	if rec.Properties.Length != 0 || !rec.Properties.IsPalindrome {
		t.Errorf("empty string bundle = %+v", rec.Properties)
	}
}

func TestCreate_ValueTooLarge(t *testing.T) {
	database := newTestDB(t)
	cfg := &config.Config{ValueMaxChars: 10}

	_, err := Create(context.Background(), database, cfg, CreateInput{Value: strings.Repeat("x", 11)})
	if !errors.Is(err, errors.ErrValueTooLarge) {
		t.Fatalf("err = %v, want VALUE_TOO_LARGE", err)
	}
}

func TestCreate_RoundTripThroughFetch(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	created, err := Create(ctx, database, config.DefaultConfig(), CreateInput{Value: "racecar"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	fetched, err := Fetch(ctx, database, FetchInput{Value: "racecar"})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if fetched.Value != "racecar" {
		t.Errorf("Value = %q, want racecar", fetched.Value)
	}
	if fetched.Hash != created.Hash {
		t.Errorf("Hash mismatch: %q vs %q", fetched.Hash, created.Hash)
	}

	// Fetched properties equal a fresh analysis of the value
	want := analysis.Analyze("racecar")
	if fetched.Properties.Length != want.Length ||
		fetched.Properties.IsPalindrome != want.IsPalindrome ||
		fetched.Properties.UniqueChars != want.UniqueChars ||
		fetched.Properties.WordCount != want.WordCount {
		t.Errorf("Properties = %+v, want %+v", fetched.Properties, want)
	}
}
