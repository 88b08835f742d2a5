package htmltext

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Build APIs in Go", "Build APIs in Go"},
		{"simple markup", "<p>Build <b>APIs</b> in Go</p>", "Build APIs in Go"},
		{"script stripped", "<p>Hi</p><script>alert(1)</script>", "Hi"},
		{"style stripped", "<style>p{color:red}</style><p>Hi</p>", "Hi"},
		{"nbsp collapsed", "a  b", "a b"},
		{"whitespace collapsed", "<div>  a\n\n  b\t c </div>", "a b c"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Extract(tc.in); got != tc.want {
				t.Errorf("Extract(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSnippet(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 100) + "</p>"

	got := Snippet(long, 50)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated snippet missing ellipsis: %q", got)
	}
	if n := len([]rune(got)); n > 51 {
		t.Errorf("snippet too long: %d runes", n)
	}
	if strings.Contains(got, "<") {
		t.Errorf("snippet contains markup: %q", got)
	}

	short := Snippet("<p>short text</p>", 50)
	if short != "short text" {
		t.Errorf("short input altered: %q", short)
	}

	if s := Snippet("whatever", 0); s != "whatever" {
		t.Errorf("max=0 should disable truncation, got %q", s)
	}
}

func TestSnippet_CutsOnWordBoundary(t *testing.T) {
	got := Snippet("alpha beta gamma delta", 12)
	if got != "alpha beta…" {
		t.Errorf("Snippet = %q, want %q", got, "alpha beta…")
	}
}
