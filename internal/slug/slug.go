// Package slug derives URL-safe post identifiers.
package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/blogbuilder/internal/frontmatter"
)

// MaxLength is the maximum length of a derived slug in bytes.
const MaxLength = 80

// Resolve returns the explicit `slug` field verbatim when set, otherwise the
// slug derived from the title.
func Resolve(fields frontmatter.Fields) string {
	if s := fields.Get(frontmatter.KeySlug); s != "" {
		return s
	}
	return FromTitle(fields.Get(frontmatter.KeyTitle))
}

// FromTitle lowercases title, replaces every run of characters outside
// [a-z0-9] with a single hyphen, trims hyphens at both ends, and truncates to
// MaxLength.
//
// A hyphen left at the end by the truncation is trimmed as well, so a long
// title ending "...word-" at byte 80 yields "...word". A plain 80-byte cut
// would keep that hyphen and the result would no longer be a fixed point;
// with the trim FromTitle(FromTitle(t)) == FromTitle(t) always holds.
func FromTitle(title string) string {
	lower := cases.Lower(language.Und).String(title)

	var b strings.Builder
	b.Grow(len(lower))
	gap := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteByte(c)
			continue
		}
		gap = true
	}

	s := b.String()
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	return s
}
