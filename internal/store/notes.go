package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nnl3336/QuickNote/internal/richtext"
)

// Commit durably writes the note's current content. The first commit stamps
// CreatedAt; later commits leave it untouched. Whitespace-only notes are
// rejected with ErrEmptyNote so callers can route them to Delete instead.
func (s *Store) Commit(ctx context.Context, n *Note) error {
	if n.Empty() {
		return ErrEmptyNote
	}

	if len(n.StyledDocument) > 0 {
		doc, err := richtext.Decode(n.StyledDocument)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDocumentMismatch, err)
		}
		if doc.PlainText() != n.PlainText {
			return ErrDocumentMismatch
		}
	}

	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO notes (id, plain_text, styled_document, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			plain_text = excluded.plain_text,
			styled_document = excluded.styled_document
	`, n.ID, n.PlainText, n.StyledDocument, createdAt)
	if err != nil {
		return storageErr("commit", err)
	}

	n.CreatedAt = createdAt
	n.Persisted = true
	return nil
}

// Delete removes the note's row if it was ever committed. Deleting an
// unpersisted note is a no-op; repeat deletes are harmless.
func (s *Store) Delete(ctx context.Context, n *Note) error {
	if !n.Persisted {
		return nil
	}
	if _, err := s.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, n.ID); err != nil {
		return storageErr("delete", err)
	}
	n.Persisted = false
	return nil
}

// Get loads a single note by id, or (nil, nil) when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*Note, error) {
	var n Note
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, plain_text, styled_document, created_at
		FROM notes WHERE id = ?
	`, id).Scan(&n.ID, &n.PlainText, &n.StyledDocument, &n.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get", err)
	}

	n.Persisted = true
	return &n, nil
}

// List returns all notes newest first. CreatedAt never moves after the first
// commit, so the order is stable across edits; ties fall back to id.
func (s *Store) List(ctx context.Context) ([]Note, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, plain_text, styled_document, created_at
		FROM notes
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.PlainText, &n.StyledDocument, &n.CreatedAt); err != nil {
			return nil, storageErr("list", err)
		}
		n.Persisted = true
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list", err)
	}
	return notes, nil
}
