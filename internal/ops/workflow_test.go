package ops

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/strandhq/strand/internal/db"
	"github.com/strandhq/strand/internal/errors"
	"github.com/strandhq/strand/internal/query"
	"github.com/stretchr/testify/require"
)

// TestFullWorkflow exercises the complete string lifecycle:
// create → fetch → list → ask → export → delete → fetch (not found) → import
func TestFullWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	require.NoError(t, err)
	defer database.Close()

	exportDir := t.TempDir()
	cfg := exportConfig(exportDir)
	ctx := context.Background()

	// 1. Create
	createOut, err := Create(ctx, database, cfg, CreateInput{Value: "racecar"})
	require.NoError(t, err)
	require.NotEmpty(t, createOut.Hash)
	require.True(t, createOut.Properties.IsPalindrome)
	hash := createOut.Hash

	_, err = Create(ctx, database, cfg, CreateInput{Value: "hello world"})
	require.NoError(t, err)

	// Duplicate create conflicts
	_, err = Create(ctx, database, cfg, CreateInput{Value: "racecar"})
	require.True(t, errors.Is(err, errors.ErrAlreadyExists))

	// 2. Fetch by value
	fetchOut, err := Fetch(ctx, database, FetchInput{Value: "racecar"})
	require.NoError(t, err)
	require.Equal(t, hash, fetchOut.Hash)
	require.Equal(t, 7, fetchOut.Properties.Length)

	// 3. List with a filter
	isPal := true
	listOut, err := List(ctx, database, ListInput{
		Filters: query.Filters{IsPalindrome: &isPal},
	})
	require.NoError(t, err)
	require.Len(t, listOut.Data, 1)
	require.Equal(t, "racecar", listOut.Data[0].Value)

	// 4. Ask in natural language
	askOut, err := Ask(ctx, database, AskInput{Query: "strings with two words"})
	require.NoError(t, err)
	require.Len(t, askOut.Data, 1)
	require.Equal(t, "hello world", askOut.Data[0].Value)
	require.Equal(t, 2, askOut.InterpretedQuery.ParsedFilters["word_count"])

	// 5. Export everything
	exportPath := filepath.Join(exportDir, "workflow.jsonl")
	exportOut, err := Export(ctx, database, cfg, ExportInput{Path: exportPath})
	require.NoError(t, err)
	require.Equal(t, 2, exportOut.Count)

	// 6. Delete
	deleteOut, err := Delete(ctx, database, DeleteInput{Value: "racecar"})
	require.NoError(t, err)
	require.True(t, deleteOut.Deleted)

	// 7. Fetch after delete
	_, err = Fetch(ctx, database, FetchInput{Value: "racecar"})
	require.True(t, errors.Is(err, errors.ErrNotFound))

	// 8. Import restores the deleted string and skips the survivor
	importOut, err := Import(ctx, database, cfg, ImportInput{Path: exportPath})
	require.NoError(t, err)
	require.Equal(t, 1, importOut.Imported)
	require.Equal(t, 1, importOut.Skipped)

	restored, err := Fetch(ctx, database, FetchInput{Value: "racecar"})
	require.NoError(t, err)
	require.Equal(t, hash, restored.Hash)
}
