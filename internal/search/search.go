// Package search narrows note listings by user-entered keywords.
package search

import (
	"strings"

	"github.com/nnl3336/QuickNote/internal/store"
)

// Matches reports whether text contains every whitespace-separated keyword
// of query as a case-insensitive substring. An empty query matches anything.
func Matches(text, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, tok := range tokens {
		if !strings.Contains(lower, strings.ToLower(tok)) {
			return false
		}
	}
	return true
}

// Filter keeps the notes whose plain text matches query, preserving the
// input order. An empty query returns the input unchanged.
func Filter(notes []store.Note, query string) []store.Note {
	if len(strings.Fields(query)) == 0 {
		return notes
	}
	var out []store.Note
	for _, n := range notes {
		if Matches(n.PlainText, query) {
			out = append(out, n)
		}
	}
	return out
}
