// Package htmltext flattens the HTML job descriptions the backend stores
// into plain text for list snippets. The backend owns the markup; the client
// only ever reads it.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract returns the visible text of an HTML fragment. Plain-text input
// comes back cleaned but otherwise untouched.
func Extract(html string) string {
	if !strings.ContainsRune(html, '<') {
		return CleanText(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return CleanText(html)
	}
	doc.Find("script, style").Remove()
	return CleanText(doc.Text())
}

// Snippet truncates extracted text to max runes on a word boundary.
func Snippet(html string, max int) string {
	text := Extract(html)
	if max <= 0 || len([]rune(text)) <= max {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i > max/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:.") + "…"
}

// CleanText collapses whitespace and non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
