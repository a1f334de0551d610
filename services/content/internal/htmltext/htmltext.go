// Package htmltext extracts readable text from article HTML.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// WordsPerMinute is the reading speed used for reading-time estimates.
const WordsPerMinute = 200

// skipped elements never contribute visible words.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Text returns the visible text of an HTML fragment with tags removed.
func Text(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	depth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input: keep what was read so far.
			return strings.TrimSpace(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if skipped[string(name)] {
				depth++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if skipped[string(name)] && depth > 0 {
				depth--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if depth == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// WordCount counts whitespace separated words in the visible text.
func WordCount(fragment string) int {
	return len(strings.Fields(Text(fragment)))
}

// ReadingTime returns whole minutes needed to read fragment, rounded up.
func ReadingTime(fragment string) int {
	words := WordCount(fragment)
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
