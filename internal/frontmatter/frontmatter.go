package frontmatter

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter is the line that opens and closes a front matter block.
const Delimiter = "---"

// Well-known front matter keys.
const (
	KeyTitle       = "title"
	KeyDate        = "date"
	KeyCategory    = "category"
	KeyDescription = "description"
	KeySlug        = "slug"
)

var (
	// ErrMalformedDocument indicates the document does not start with a
	// `---` line or the block is never closed.
	ErrMalformedDocument = errors.New("missing front matter block (--- ... ---)")

	// ErrMissingRequiredField indicates title or date is absent or empty.
	ErrMissingRequiredField = errors.New("front matter requires at least title and date")
)

// RequiredKeys must be present with a non-empty value in every post.
var RequiredKeys = []string{KeyTitle, KeyDate}

// Fields is the parsed `key: value` metadata of a document.
type Fields map[string]string

// Get returns the value for key, or "" when absent.
func (f Fields) Get(key string) string {
	return f[key]
}

// Parse splits raw into front matter fields and body and validates that the
// required keys are present.
func Parse(raw string) (Fields, string, error) {
	block, body, err := Split(raw)
	if err != nil {
		return nil, "", err
	}

	fields := ParseFields(block)
	for _, key := range RequiredKeys {
		if fields[key] == "" {
			return nil, "", fmt.Errorf("%w: %q is missing", ErrMissingRequiredField, key)
		}
	}
	return fields, body, nil
}

// Split separates the front matter block from the body.
//
// The document must begin with a line that is exactly `---` (LF or CRLF); the
// block ends at the next line that is exactly `---`. body is everything after
// that closing line, untouched.
func Split(raw string) (block string, body string, err error) {
	raw = strings.TrimPrefix(raw, "\uFEFF")

	var rest string
	switch {
	case strings.HasPrefix(raw, Delimiter+"\n"):
		rest = raw[len(Delimiter)+1:]
	case strings.HasPrefix(raw, Delimiter+"\r\n"):
		rest = raw[len(Delimiter)+2:]
	default:
		return "", "", ErrMalformedDocument
	}

	for pos := 0; pos <= len(rest); {
		end := strings.IndexByte(rest[pos:], '\n')
		line, next := rest[pos:], len(rest)
		if end >= 0 {
			line, next = rest[pos:pos+end], pos+end+1
		}
		if strings.TrimSuffix(line, "\r") == Delimiter {
			return rest[:pos], rest[next:], nil
		}
		if end < 0 {
			break
		}
		pos = next
	}

	return "", "", ErrMalformedDocument
}

// ParseFields reads `key: value` lines. Each line is split on its first colon
// and both sides are trimmed; blank lines, lines without a colon, and lines
// with an empty key are skipped. Later duplicates win.
func ParseFields(block string) Fields {
	fields := Fields{}
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	return fields
}
