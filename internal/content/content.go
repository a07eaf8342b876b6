// Package content derives reading time and preview snippets for posts.
package content

import (
	"math"
	"strings"

	"golang.org/x/net/html"
)

const (
	// WordsPerMinute is the reading speed used for estimates.
	WordsPerMinute = 200
	// SnippetWords is the maximum number of words kept in a snippet.
	SnippetWords = 40
	// Ellipsis is appended to every snippet, including short ones.
	Ellipsis = "..."
)

// ReadingTime estimates the minutes needed to read markdown: whitespace
// separated tokens divided by WordsPerMinute, rounded, never less than 1.
func ReadingTime(markdown string) int {
	words := len(strings.Fields(markdown))
	minutes := int(math.Round(float64(words) / WordsPerMinute))
	return max(1, minutes)
}

// Snippet returns the first SnippetWords words of the text in rendered HTML,
// followed by Ellipsis.
//
// script and style elements are dropped with their content, every other tag
// becomes a space, and whitespace runs collapse to single spaces. Character
// references are kept as written so the snippet can be inserted into HTML
// unchanged.
func Snippet(rendered string) string {
	words := strings.Fields(stripTags(rendered))
	if len(words) > SnippetWords {
		words = words[:SnippetWords]
	}
	return strings.Join(words, " ") + Ellipsis
}

func stripTags(rendered string) string {
	z := html.NewTokenizer(strings.NewReader(rendered))

	var b strings.Builder
	b.Grow(len(rendered))
	hidden := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or a tokenizer error on truncated markup; either way
			// everything readable has been consumed.
			return b.String()
		case html.TextToken:
			if hidden == 0 {
				b.Write(z.Raw())
			}
		case html.StartTagToken:
			if isHiddenElement(z) {
				hidden++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			if isHiddenElement(z) && hidden > 0 {
				hidden--
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(' ')
		}
	}
}

func isHiddenElement(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style":
		return true
	default:
		return false
	}
}
