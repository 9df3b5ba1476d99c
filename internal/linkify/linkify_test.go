package linkify

import (
	"testing"

	"github.com/nnl3336/QuickNote/internal/richtext"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []Match
	}{
		{
			name: "no urls",
			text: "just a plain note",
			want: nil,
		},
		{
			name: "single http url",
			text: "see http://example.com for details",
			want: []Match{{Start: 4, End: 22, URL: "http://example.com"}},
		},
		{
			name: "https with path and query",
			text: "https://example.com/a/b?x=1&y=2",
			want: []Match{{Start: 0, End: 31, URL: "https://example.com/a/b?x=1&y=2"}},
		},
		{
			name: "two urls",
			text: "http://a.test and https://b.test",
			want: []Match{
				{Start: 0, End: 13, URL: "http://a.test"},
				{Start: 18, End: 32, URL: "https://b.test"},
			},
		},
		{
			name: "url after multibyte text",
			text: "リンク: https://example.jp/メモ",
			want: []Match{{Start: 5, End: 24, URL: "https://example.jp/"}},
		},
		{
			name: "scheme alone is not a url",
			text: "https:// is how links start",
			want: nil,
		},
		{
			name: "sentence-final period excluded",
			text: "see http://example.com.",
			want: []Match{{Start: 4, End: 22, URL: "http://example.com"}},
		},
		{
			name: "trailing comma excluded",
			text: "go to https://a.test, then stop",
			want: []Match{{Start: 6, End: 20, URL: "https://a.test"}},
		},
		{
			name: "ellipsis after scheme is not a url",
			text: "http://... what was it again",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Detect(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d matches, want %d: %+v", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("match %d: got %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestDetectGreedyLongestMatch(t *testing.T) {
	got := Detect("https://example.com/path")
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if got[0].URL != "https://example.com/path" {
		t.Fatalf("match stopped early: %q", got[0].URL)
	}
}

func TestApplyAddsLinkRun(t *testing.T) {
	doc := richtext.NewDocument("Check https://example.com")
	linked := Apply(doc)

	links := linked.LinkRuns()
	if len(links) != 1 {
		t.Fatalf("expected 1 link run, got %d", len(links))
	}
	r := links[0]
	if r.Link != "https://example.com" {
		t.Errorf("wrong link target: %q", r.Link)
	}
	if r.Start != 6 || r.End != 25 {
		t.Errorf("wrong range: [%d,%d)", r.Start, r.End)
	}
	if !r.Underline || r.Color != LinkColor {
		t.Errorf("link run missing styling: %+v", r)
	}
	if linked.PlainText() != doc.PlainText() {
		t.Errorf("Apply changed text: %q", linked.PlainText())
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	doc := richtext.NewDocument("a http://x.test b https://y.test c")
	once := Apply(doc)
	twice := Apply(once)
	if !once.Equal(twice) {
		t.Fatalf("Apply not idempotent:\nonce:  %+v\ntwice: %+v", once.Runs(), twice.Runs())
	}
}

func TestApplyKeepsExplicitLinks(t *testing.T) {
	// A manual link over the URL range must survive re-detection.
	text := "read https://example.com now"
	manual := richtext.Run{Start: 5, End: 24, Link: "https://other.test", Color: "#ff00ff"}
	doc := richtext.NewStyledDocument(text, []richtext.Run{manual})

	linked := Apply(doc)
	links := linked.LinkRuns()
	if len(links) != 1 {
		t.Fatalf("expected 1 link run, got %d", len(links))
	}
	if links[0] != manual {
		t.Fatalf("explicit link was overwritten: %+v", links[0])
	}
}

func TestApplyLeavesNonLinkRunsAlone(t *testing.T) {
	text := "bold https://example.com"
	bold := richtext.Run{Start: 0, End: 4, Font: "bold"}
	doc := richtext.NewStyledDocument(text, []richtext.Run{bold})

	linked := Apply(doc)
	if len(linked.LinkRuns()) != 1 {
		t.Fatalf("expected the url to gain a link run: %+v", linked.Runs())
	}
	found := false
	for _, r := range linked.Runs() {
		if r == bold {
			found = true
		}
	}
	if !found {
		t.Fatalf("styling run lost: %+v", linked.Runs())
	}
}

func TestApplyNoMatchesReturnsSameDocument(t *testing.T) {
	doc := richtext.NewDocument("nothing to see")
	if !Apply(doc).Equal(doc) {
		t.Fatal("Apply changed a document with no urls")
	}
}
