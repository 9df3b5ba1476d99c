package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nnl3336/QuickNote/internal/richtext"
	"github.com/nnl3336/QuickNote/internal/search"
)

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "ok"}, http.StatusOK)
}

type NoteSummary struct {
	ID        string    `json:"id"`
	PlainText string    `json:"plain_text"`
	CreatedAt time.Time `json:"created_at"`
}

type NoteDetail struct {
	ID        string         `json:"id"`
	PlainText string         `json:"plain_text"`
	CreatedAt time.Time      `json:"created_at"`
	Runs      []richtext.Run `json:"runs,omitempty"`
}

func (s *Server) listNotesHandler(w http.ResponseWriter, r *http.Request) {
	notes, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("list notes", "err", err)
		jsonError(w, "failed to list notes", http.StatusInternalServerError)
		return
	}

	notes = search.Filter(notes, r.URL.Query().Get("q"))

	out := make([]NoteSummary, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteSummary{
			ID:        n.ID,
			PlainText: n.PlainText,
			CreatedAt: n.CreatedAt,
		})
	}
	jsonResponse(w, out, http.StatusOK)
}

func (s *Server) getNoteHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	note, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.logger.Error("get note", "id", id, "err", err)
		jsonError(w, "failed to load note", http.StatusInternalServerError)
		return
	}
	if note == nil {
		jsonError(w, "note not found", http.StatusNotFound)
		return
	}

	detail := NoteDetail{
		ID:        note.ID,
		PlainText: note.PlainText,
		CreatedAt: note.CreatedAt,
	}
	if len(note.StyledDocument) > 0 {
		doc, err := richtext.Decode(note.StyledDocument)
		if err != nil {
			// Plain text stays authoritative when the stored bytes
			// are unreadable.
			s.logger.Warn("corrupt styled document", "id", id, "err", err)
		} else {
			detail.Runs = doc.Runs()
		}
	}
	jsonResponse(w, detail, http.StatusOK)
}
