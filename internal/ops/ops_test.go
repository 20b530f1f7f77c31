package ops

import (
	"context"
	"database/sql"
	"testing"

	"github.com/strandhq/strand/internal/config"
	"github.com/strandhq/strand/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func mustCreate(t *testing.T, database *sql.DB, values ...string) {
	t.Helper()
	cfg := config.DefaultConfig()
	for _, v := range values {
		if _, err := Create(context.Background(), database, cfg, CreateInput{Value: v}); err != nil {
			t.Fatalf("Create(%q) failed: %v", v, err)
		}
	}
}

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }
