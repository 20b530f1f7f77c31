package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/errors"
)

// Insert stores a new record. Fails with ALREADY_EXISTS if a record with
// the same content hash is present; no mutation happens on failure.
func Insert(ctx context.Context, db *sql.DB, rec *analysis.Record) error {
	freqJSON, err := json.Marshal(rec.Properties.Frequency)
	if err != nil {
		return errors.NewInternal(err)
	}

	query := `
		INSERT INTO strings (
			hash, value, length, is_palindrome, unique_chars,
			word_count, freq_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.ExecContext(ctx, query,
		rec.Hash, rec.Value, rec.Properties.Length, boolToInt(rec.Properties.IsPalindrome),
		rec.Properties.UniqueChars, rec.Properties.WordCount, string(freqJSON),
		rec.CreatedAt.Unix(),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return errors.NewAlreadyExists(rec.Hash)
		}
		return errors.NewInternal(err)
	}

	return nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite reports "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Exists reports whether a record with the given hash is stored.
func Exists(ctx context.Context, db *sql.DB, hash string) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM strings WHERE hash = ? LIMIT 1", hash).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return true, nil
}

// GetByHash retrieves a record by its content hash.
func GetByHash(ctx context.Context, db *sql.DB, hash string) (*analysis.Record, error) {
	query := `
		SELECT hash, value, length, is_palindrome, unique_chars,
			word_count, freq_json, created_at
		FROM strings
		WHERE hash = ?
	`

	row := db.QueryRowContext(ctx, query, hash)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(hash)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return rec, nil
}

// Delete removes a record by its content hash.
func Delete(ctx context.Context, db *sql.DB, hash string) error {
	result, err := db.ExecContext(ctx, "DELETE FROM strings WHERE hash = ?", hash)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(hash)
	}

	return nil
}

// All returns a snapshot of every stored record in insertion order.
func All(ctx context.Context, db *sql.DB) ([]analysis.Record, error) {
	query := `
		SELECT hash, value, length, is_palindrome, unique_chars,
			word_count, freq_json, created_at
		FROM strings
		ORDER BY rowid
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	records := make([]analysis.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return records, nil
}

// Count returns the number of stored records.
func Count(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM strings").Scan(&n); err != nil {
		return 0, errors.NewInternal(err)
	}
	return n, nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord scans a full record row.
func scanRecord(s scanner) (*analysis.Record, error) {
	var (
		rec        analysis.Record
		palindrome int
		freqJSON   string
		createdAt  int64
	)

	err := s.Scan(
		&rec.Hash, &rec.Value, &rec.Properties.Length, &palindrome,
		&rec.Properties.UniqueChars, &rec.Properties.WordCount, &freqJSON,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Properties.IsPalindrome = palindrome != 0
	rec.Properties.Hash = rec.Hash
	rec.CreatedAt = time.Unix(createdAt, 0).UTC()

	rec.Properties.Frequency = make(map[string]int)
	if err := json.Unmarshal([]byte(freqJSON), &rec.Properties.Frequency); err != nil {
		return nil, err
	}

	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
