package sqlitekv

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"wardrobe-ai/internal/wardrobe/repository"
	"wardrobe-ai/pkg/log"
)

// Storage keys, carried over from the app's original local-storage layout.
const (
	keyClothes   = "wardrobe_clothes"
	keyOutfits   = "wardrobe_outfits"
	keyBookmarks = "wardrobe_bookmarks"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New opens (or creates) the wardrobe database and returns the snapshot
// Repository backed by a single key-value table.
func New(dbPath string, l log.Logger) (repository.Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlitekv: failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlitekv: failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlitekv: failed to set pragma: %w", err)
		}
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlitekv: failed to initialize schema: %w", err)
	}

	return &implRepository{db: db, l: l}, nil
}

// Close releases the database handle.
func (r *implRepository) Close() error {
	return r.db.Close()
}
