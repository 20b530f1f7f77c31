package ops

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/config"
	"github.com/strandhq/strand/internal/db"
	"github.com/strandhq/strand/internal/errors"
)

// ImportMode controls duplicate behavior during import.
type ImportMode string

const (
	ImportModeSkip  ImportMode = "skip"  // default: skip values already stored
	ImportModeError ImportMode = "error" // fail on the first duplicate
)

// ImportInput contains parameters for the Import operation.
type ImportInput struct {
	Path string
	Mode ImportMode
}

// ImportOutput contains the result of the Import operation.
type ImportOutput struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	ExportID string `json:"export_id,omitempty"`
}

// Import loads strings from a JSONL export file. Each value is
// re-analyzed on the way in; properties in old export files (if any) are
// ignored, so a hash can never disagree with its value.
func Import(ctx context.Context, database *sql.DB, cfg *config.Config, input ImportInput) (*ImportOutput, error) {
	if input.Mode == "" {
		input.Mode = ImportModeSkip
	}
	if input.Mode != ImportModeSkip && input.Mode != ImportModeError {
		return nil, errors.NewInvalidRequest("mode must be one of: skip, error")
	}

	if err := ValidatePath(input.Path, PathCheckRead, cfg); err != nil {
		return nil, err
	}

	file, err := openFileNoFollowRead(input.Path)
	if err != nil {
		if _, ok := err.(*errors.StrandError); ok {
			return nil, err
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to open import file: %w", err))
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	// First line must be a Strand export header
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.NewInternal(err)
		}
		return nil, errors.NewInvalidRequest("import file is empty")
	}
	var header ExportHeader
	if err := json.Unmarshal(scanner.Bytes(), &header); err != nil || !header.StrandExport {
		return nil, errors.NewInvalidRequest("import file is not a strand export (missing header)")
	}

	out := &ImportOutput{ExportID: header.ExportID}
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec ExportRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("malformed record on line %d", lineNo))
		}

		if err := validateValue(cfg, rec.Value); err != nil {
			return nil, err
		}

		createdAt := time.Now()
		if rec.CreatedAt > 0 {
			createdAt = time.Unix(rec.CreatedAt, 0)
		}

		err := db.Insert(ctx, database, analysis.NewRecord(rec.Value, createdAt))
		if errors.Is(err, errors.ErrAlreadyExists) {
			if input.Mode == ImportModeError {
				return nil, err
			}
			out.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		out.Imported++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return out, nil
}
