package search

import (
	"testing"

	"github.com/nnl3336/QuickNote/internal/store"
)

func notesWith(texts ...string) []store.Note {
	notes := make([]store.Note, 0, len(texts))
	for _, text := range texts {
		n := store.NewNote()
		n.PlainText = text
		notes = append(notes, n)
	}
	return notes
}

func plainTexts(notes []store.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.PlainText)
	}
	return out
}

func TestFilterAndSemantics(t *testing.T) {
	notes := notesWith("buy milk", "buy bread", "walk dog")

	got := plainTexts(Filter(notes, "buy milk"))
	if len(got) != 1 || got[0] != "buy milk" {
		t.Fatalf("query 'buy milk' should require both tokens, got %v", got)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	notes := notesWith("buy milk", "buy bread", "walk dog")

	got := plainTexts(Filter(notes, "BUY"))
	if len(got) != 2 || got[0] != "buy milk" || got[1] != "buy bread" {
		t.Fatalf("query 'BUY' should match first two, got %v", got)
	}
}

func TestFilterTokenOrderIrrelevant(t *testing.T) {
	notes := notesWith("buy fresh milk")

	if len(Filter(notes, "milk buy")) != 1 {
		t.Fatal("token order should not matter")
	}
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	notes := notesWith("a", "b", "c")

	for _, q := range []string{"", "   ", "\t\n"} {
		if got := Filter(notes, q); len(got) != len(notes) {
			t.Fatalf("query %q should match all, got %d", q, len(got))
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	notes := notesWith("match one", "skip", "match two", "match three")

	got := plainTexts(Filter(notes, "match"))
	want := []string{"match one", "match two", "match three"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("relative order changed: got %v", got)
		}
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		text  string
		query string
		want  bool
	}{
		{"hello world", "hello", true},
		{"hello world", "HELLO world", true},
		{"hello world", "hello mars", false},
		{"hello world", "", true},
		{"日本語のメモ", "メモ", true},
		{"日本語のメモ", "めも", false},
	}

	for _, tc := range cases {
		if got := Matches(tc.text, tc.query); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tc.text, tc.query, got, tc.want)
		}
	}
}
