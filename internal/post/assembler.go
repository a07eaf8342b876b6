package post

import (
	"strings"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/content"
	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/frontmatter"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
	"git.home.luguber.info/inful/blogbuilder/internal/slug"
)

// Assembler turns raw documents into posts.
type Assembler struct {
	renderer markdown.Renderer
}

// NewAssembler returns an Assembler that renders bodies with r.
func NewAssembler(r markdown.Renderer) *Assembler {
	return &Assembler{renderer: r}
}

// Assemble parses doc and builds its Post.
//
// Every failure is a fatal validation error carrying the document path; the
// underlying sentinel (frontmatter.ErrMalformedDocument,
// frontmatter.ErrMissingRequiredField, ErrInvalidDate, ErrInvalidSlug) stays
// reachable through errors.Is.
func (a *Assembler) Assemble(doc RawDocument) (Post, error) {
	fields, body, err := frontmatter.Parse(doc.Text)
	if err != nil {
		return Post{}, invalidDocument(doc.Path, err)
	}

	date := fields.Get(frontmatter.KeyDate)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Post{}, foundationerrors.ValidationError(ErrInvalidDate, "invalid post").
			WithContext("file", doc.Path).
			WithContext("date", date).
			Build()
	}

	postSlug := slug.Resolve(fields)
	if strings.ContainsAny(postSlug, `/\`) {
		return Post{}, foundationerrors.ValidationError(ErrInvalidSlug, "invalid post").
			WithContext("file", doc.Path).
			WithContext("slug", postSlug).
			Build()
	}

	body = strings.TrimSpace(body)
	html, err := a.renderer.Render(body)
	if err != nil {
		return Post{}, foundationerrors.RenderError(err, "render post").
			WithContext("file", doc.Path).
			Build()
	}

	return Post{
		Title:       fields.Get(frontmatter.KeyTitle),
		Date:        date,
		Year:        date[:4],
		Category:    fields.Get(frontmatter.KeyCategory),
		Description: fields.Get(frontmatter.KeyDescription),
		Slug:        postSlug,
		ReadingTime: content.ReadingTime(body),
		HTML:        html,
		Snippet:     content.Snippet(html),
		SourcePath:  doc.Path,
	}, nil
}

func invalidDocument(path string, err error) error {
	return foundationerrors.ValidationError(err, "invalid post").
		WithContext("file", path).
		Build()
}
