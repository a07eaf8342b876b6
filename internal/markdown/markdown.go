// Package markdown renders post bodies from Markdown to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts a Markdown body (front matter already removed) into an
// HTML fragment.
type Renderer interface {
	Render(body string) (string, error)
}

// Options controls the optional goldmark features.
//
// GitHub Flavored Markdown, generated heading IDs and raw HTML passthrough are
// always enabled.
type Options struct {
	// Footnotes enables the PHP Markdown Extra footnote syntax.
	Footnotes bool
	// HardWraps renders single newlines inside paragraphs as <br>.
	HardWraps bool
}

// Goldmark is the goldmark-backed Renderer.
type Goldmark struct {
	md goldmark.Markdown
}

var _ Renderer = (*Goldmark)(nil)

// New returns a Goldmark renderer configured by opts.
func New(opts Options) *Goldmark {
	extensions := []goldmark.Extender{extension.GFM}
	if opts.Footnotes {
		extensions = append(extensions, extension.Footnote)
	}

	htmlOptions := []renderer.Option{html.WithUnsafe()}
	if opts.HardWraps {
		htmlOptions = append(htmlOptions, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(htmlOptions...),
	)
	return &Goldmark{md: md}
}

// Render converts body to HTML.
func (g *Goldmark) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
