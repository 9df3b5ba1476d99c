// Package session drives one note's edit lifecycle: open, edit, then exactly
// one of commit, discard, or delete.
package session

import (
	"context"
	"unicode"

	"github.com/nnl3336/QuickNote/internal/linkify"
	"github.com/nnl3336/QuickNote/internal/richtext"
	"github.com/nnl3336/QuickNote/internal/store"
)

// State is the session's lifecycle position.
type State int

const (
	StateEditing State = iota
	StateClosed
)

// Result names the terminal transition a call to Exit took.
type Result int

const (
	// ResultClosed means the session had already taken a terminal
	// transition; the extra exit signal was ignored.
	ResultClosed Result = iota
	// ResultCommitted means the note content was written to the store.
	ResultCommitted
	// ResultDiscarded means nothing was persisted: either the exit was
	// cancelled, or a never-committed note ended up empty.
	ResultDiscarded
	// ResultDeleted means the note was emptied and its row removed.
	ResultDeleted
)

// Session holds the working copy of a single note between open and exit. A
// session takes exclusive ownership of that copy for its lifetime; the store
// is only touched again when Exit runs.
type Session struct {
	store *store.Store
	note  store.Note
	doc   richtext.Document
	state State
}

// Open starts a session. A nil note begins a new empty one. For an existing
// note the styled document is decoded, falling back to the plain text when
// the stored bytes are corrupt.
func Open(st *store.Store, note *store.Note) *Session {
	s := &Session{store: st, state: StateEditing}
	if note == nil {
		s.note = store.NewNote()
		s.doc = richtext.NewDocument("")
		return s
	}

	s.note = *note
	if len(note.StyledDocument) > 0 {
		if doc, err := richtext.Decode(note.StyledDocument); err == nil {
			s.doc = doc
			return s
		}
	}
	s.doc = richtext.NewDocument(note.PlainText)
	return s
}

// Note returns the session's working note.
func (s *Session) Note() store.Note {
	return s.note
}

// IsNew reports whether the note has never been committed.
func (s *Session) IsNew() bool {
	return !s.note.Persisted
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Document returns the current working document.
func (s *Session) Document() richtext.Document {
	return s.doc
}

// SetDocument replaces the working document wholesale. Calls after the
// session has closed are ignored.
func (s *Session) SetDocument(doc richtext.Document) {
	if s.state == StateClosed {
		return
	}
	s.doc = doc
}

// Exit takes the session's single terminal transition. Every exit signal
// funnels through here; only the first call has any effect, so doubled
// signals (backgrounding plus navigation, say) cannot commit twice.
//
// The cancel flag wins over everything: a cancelled exit never touches the
// store. Otherwise empty content deletes the note (if it was ever committed)
// and anything else is link-detected, encoded, and committed. A storage
// failure is returned to the caller but the session closes regardless.
func (s *Session) Exit(ctx context.Context, cancelled bool) (Result, error) {
	if s.state == StateClosed {
		return ResultClosed, nil
	}
	s.state = StateClosed

	if cancelled {
		return ResultDiscarded, nil
	}

	doc := trimDocument(s.doc)
	if doc.PlainText() == "" {
		if !s.note.Persisted {
			return ResultDiscarded, nil
		}
		if err := s.store.Delete(ctx, &s.note); err != nil {
			return ResultDeleted, err
		}
		return ResultDeleted, nil
	}

	linked := linkify.Apply(doc)
	data, err := richtext.Encode(linked)
	if err != nil {
		return ResultCommitted, err
	}

	s.note.PlainText = linked.PlainText()
	s.note.StyledDocument = data
	if err := s.store.Commit(ctx, &s.note); err != nil {
		return ResultCommitted, err
	}
	s.doc = linked
	return ResultCommitted, nil
}

// trimDocument strips surrounding whitespace from the document text, keeping
// runs aligned with the trimmed text and dropping any that fall outside it.
func trimDocument(doc richtext.Document) richtext.Document {
	rs := []rune(doc.PlainText())
	start := 0
	for start < len(rs) && unicode.IsSpace(rs[start]) {
		start++
	}
	end := len(rs)
	for end > start && unicode.IsSpace(rs[end-1]) {
		end--
	}
	if start == 0 && end == len(rs) {
		return doc
	}

	var runs []richtext.Run
	for _, r := range doc.Runs() {
		r.Start -= start
		r.End -= start
		if r.Start < 0 {
			r.Start = 0
		}
		if r.End > end-start {
			r.End = end - start
		}
		if r.Start < r.End {
			runs = append(runs, r)
		}
	}
	return richtext.NewStyledDocument(string(rs[start:end]), runs)
}
