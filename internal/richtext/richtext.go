package richtext

import "sort"

// Run is a styled span of a document's text. Offsets are rune-based,
// half-open [Start, End).
type Run struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Font      string `json:"font,omitempty"`
	Color     string `json:"color,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Link      string `json:"link,omitempty"`
}

func (r Run) empty() bool {
	return r.Font == "" && r.Color == "" && !r.Underline && r.Link == ""
}

// Document is an in-memory rich-text value: base text plus an ordered list
// of styled runs. Documents are treated as immutable; every mutation path
// builds a new value.
type Document struct {
	text string
	runs []Run
}

// NewDocument returns an unstyled document over text.
func NewDocument(text string) Document {
	return Document{text: text}
}

// NewStyledDocument returns a document over text carrying the given runs.
// Runs with an empty range or no attributes are dropped; the rest are kept
// in (Start, End) order.
func NewStyledDocument(text string, runs []Run) Document {
	return Document{text: text, runs: normalizeRuns(runs)}
}

// PlainText projects the document to its base text, ignoring styling.
func (d Document) PlainText() string {
	return d.text
}

// Runs returns a copy of the document's styled runs.
func (d Document) Runs() []Run {
	if len(d.runs) == 0 {
		return nil
	}
	out := make([]Run, len(d.runs))
	copy(out, d.runs)
	return out
}

// LinkRuns returns the subset of runs that carry a link target.
func (d Document) LinkRuns() []Run {
	var out []Run
	for _, r := range d.runs {
		if r.Link != "" {
			out = append(out, r)
		}
	}
	return out
}

// WithRuns returns a copy of the document with its runs replaced.
func (d Document) WithRuns(runs []Run) Document {
	return Document{text: d.text, runs: normalizeRuns(runs)}
}

// RuneLen returns the length of the base text in runes.
func (d Document) RuneLen() int {
	return len([]rune(d.text))
}

// Equal reports whether two documents have the same text and runs.
func (d Document) Equal(other Document) bool {
	if d.text != other.text || len(d.runs) != len(other.runs) {
		return false
	}
	for i := range d.runs {
		if d.runs[i] != other.runs[i] {
			return false
		}
	}
	return true
}

func normalizeRuns(runs []Run) []Run {
	var out []Run
	for _, r := range runs {
		if r.Start >= r.End || r.empty() {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}
