package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnl3336/QuickNote/internal/richtext"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCommitAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n := NewNote()
	n.PlainText = "hello"
	require.NoError(t, s.Commit(ctx, &n))

	assert.True(t, n.Persisted)
	assert.False(t, n.CreatedAt.IsZero())

	got, err := s.Get(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hello", got.PlainText)
	assert.True(t, got.Persisted)
}

func TestGetMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Get(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCommitRejectsEmptyNote(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t "} {
		n := NewNote()
		n.PlainText = text
		err := s.Commit(ctx, &n)
		assert.ErrorIs(t, err, ErrEmptyNote, "text %q", text)
		assert.False(t, n.Persisted)
	}

	notes, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCommitPreservesCreatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n := NewNote()
	n.PlainText = "first version"
	require.NoError(t, s.Commit(ctx, &n))
	created := n.CreatedAt

	time.Sleep(10 * time.Millisecond)
	n.PlainText = "second version"
	require.NoError(t, s.Commit(ctx, &n))
	assert.Equal(t, created, n.CreatedAt)

	got, err := s.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "second version", got.PlainText)
	assert.WithinDuration(t, created, got.CreatedAt, time.Second)
}

func TestCommitValidatesStyledDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n := NewNote()
	n.PlainText = "the real text"
	other, err := richtext.Encode(richtext.NewDocument("different text"))
	require.NoError(t, err)
	n.StyledDocument = other

	assert.ErrorIs(t, s.Commit(ctx, &n), ErrDocumentMismatch)

	n.StyledDocument = []byte("garbage")
	assert.ErrorIs(t, s.Commit(ctx, &n), ErrDocumentMismatch)

	good, err := richtext.Encode(richtext.NewDocument("the real text"))
	require.NoError(t, err)
	n.StyledDocument = good
	require.NoError(t, s.Commit(ctx, &n))
}

func TestCommitStoresStyledDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := richtext.NewStyledDocument("Check https://example.com", []richtext.Run{
		{Start: 6, End: 25, Link: "https://example.com", Underline: true},
	})
	data, err := richtext.Encode(doc)
	require.NoError(t, err)

	n := NewNote()
	n.PlainText = doc.PlainText()
	n.StyledDocument = data
	require.NoError(t, s.Commit(ctx, &n))

	got, err := s.Get(ctx, n.ID)
	require.NoError(t, err)
	decoded, err := richtext.Decode(got.StyledDocument)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(doc))
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n := NewNote()
	n.PlainText = "to delete"
	require.NoError(t, s.Commit(ctx, &n))

	require.NoError(t, s.Delete(ctx, &n))
	assert.False(t, n.Persisted)
	require.NoError(t, s.Delete(ctx, &n))

	got, err := s.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteUnpersistedIsNoop(t *testing.T) {
	s := newTestStore(t)

	n := NewNote()
	n.PlainText = "never committed"
	require.NoError(t, s.Delete(context.Background(), &n))
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		n := NewNote()
		n.PlainText = "note"
		n.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.Commit(ctx, &n))
		ids = append(ids, n.ID)
	}

	notes, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, ids[2], notes[0].ID)
	assert.Equal(t, ids[1], notes[1].ID)
	assert.Equal(t, ids[0], notes[2].ID)
}

func TestListBreaksTiesById(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	when := time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		n := NewNote()
		n.PlainText = "tied"
		n.CreatedAt = when
		require.NoError(t, s.Commit(ctx, &n))
	}

	first, err := s.List(ctx)
	require.NoError(t, err)
	second, err := s.List(ctx)
	require.NoError(t, err)

	require.Len(t, first, 5)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "ordering must be deterministic")
	}
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].ID, first[i].ID)
	}
}

func TestStorageErrorSurfaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n := NewNote()
	n.PlainText = "will fail"

	// Closing the handle makes every call fail with an I/O error.
	require.NoError(t, s.Close())

	err := s.Commit(ctx, &n)
	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "commit", se.Op)

	_, err = s.List(ctx)
	require.True(t, errors.As(err, &se))
}
