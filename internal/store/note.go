package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is the persisted entity: plain text for listing and search, plus an
// optional serialized styled document. PlainText is authoritative whenever
// StyledDocument is absent or fails to decode.
type Note struct {
	ID             string    `json:"id"`
	PlainText      string    `json:"plain_text"`
	StyledDocument []byte    `json:"styled_document,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// Persisted distinguishes a committed note from an in-memory one, so
	// delete-on-empty can tell whether there is a row to remove.
	Persisted bool `json:"-"`
}

// NewNote allocates an unpersisted note with a fresh id and no timestamp.
// The timestamp is set by the store on first commit.
func NewNote() Note {
	return Note{ID: uuid.NewString()}
}

// Empty reports whether the note's plain text is blank after trimming.
func (n Note) Empty() bool {
	return strings.TrimSpace(n.PlainText) == ""
}
