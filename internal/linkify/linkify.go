// Package linkify scans plain text for absolute http/https URLs and
// annotates documents with link runs.
package linkify

import (
	"regexp"
	"strings"

	"github.com/nnl3336/QuickNote/internal/richtext"
)

// LinkColor is the foreground color applied to detected link runs.
const LinkColor = "#0A84FF"

// urlPattern matches absolute http/https URLs. The scan is a single
// left-to-right pass; the regexp engine yields non-overlapping matches with
// greedy longest-match semantics at each position.
var urlPattern = regexp.MustCompile(`https?://[a-zA-Z0-9./?=&%#_:~+-]+`)

// Match is one detected URL with its rune range in the scanned text.
type Match struct {
	Start int
	End   int
	URL   string
}

// Detect returns the URL matches in text, in order of appearance.
// Sentence-final periods and commas are not part of the URL.
func Detect(text string) []Match {
	locs := urlPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	var matches []Match
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		for end > start && (text[end-1] == '.' || text[end-1] == ',') {
			end--
		}
		url := text[start:end]
		if strings.HasSuffix(url, "://") {
			continue
		}
		matches = append(matches, Match{
			Start: len([]rune(text[:start])),
			End:   len([]rune(text[:end])),
			URL:   url,
		})
	}
	return matches
}

// Apply returns a copy of doc where every detected URL range carries a link
// attribute plus link color and underline. Ranges that already overlap a run
// with an explicit link target are left untouched, so manual links are
// augmented rather than overwritten and repeat application is a no-op.
func Apply(doc richtext.Document) richtext.Document {
	matches := Detect(doc.PlainText())
	if len(matches) == 0 {
		return doc
	}

	runs := doc.Runs()
	var added []richtext.Run
	for _, m := range matches {
		if overlapsLink(runs, m.Start, m.End) {
			continue
		}
		added = append(added, richtext.Run{
			Start:     m.Start,
			End:       m.End,
			Color:     LinkColor,
			Underline: true,
			Link:      m.URL,
		})
	}
	if len(added) == 0 {
		return doc
	}
	return doc.WithRuns(append(runs, added...))
}

func overlapsLink(runs []richtext.Run, start, end int) bool {
	for _, r := range runs {
		if r.Link != "" && r.Start < end && start < r.End {
			return true
		}
	}
	return false
}
