// Package store persists notes in a local sqlite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Store owns all persisted notes. All mutations go through a single
// connection, matching the one-logical-actor model of the collection.
type Store struct {
	conn *sql.DB
}

// Open opens (creating if needed) the note database at dbPath.
func Open(dbPath string) (*Store, error) {
	if !strings.HasPrefix(dbPath, ":memory:") && !strings.HasPrefix(dbPath, "file:") {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		plain_text TEXT NOT NULL,
		styled_document BLOB,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.conn.Close()
}
