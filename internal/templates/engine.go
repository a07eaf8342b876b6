package templates

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

// Engine renders post pages and the index from template text.
type Engine struct {
	site  config.Site
	post  string
	index string
}

// NewEngine returns an Engine for site using the given template contents.
func NewEngine(site config.Site, postTemplate, indexTemplate string) *Engine {
	return &Engine{site: site, post: postTemplate, index: indexTemplate}
}

// RenderPost fills the post template for p.
func (e *Engine) RenderPost(p post.Post) string {
	category := p.Category
	if category == "" {
		category = DefaultCategory
	}
	description := p.Description
	if description == "" {
		description = e.site.Description
	}

	r := strings.NewReplacer(
		TokenTitle, p.Title,
		TokenSiteTitle, e.site.Title,
		TokenCategory, category,
		TokenDate, p.Date,
		TokenYear, p.Year,
		TokenReadingTime, strconv.Itoa(p.ReadingTime)+" min",
		TokenContent, p.HTML,
		TokenBaseURL, e.site.BaseURL,
		TokenAuthor, e.site.Author,
		TokenDescription, description,
	)
	return r.Replace(e.post)
}

// RenderIndex fills the index template with the newest PostsPerIndex posts
// and the archive of all posts. posts must already be sorted.
func (e *Engine) RenderIndex(posts []post.Post) (string, error) {
	n := e.site.PostsPerIndex
	if n <= 0 {
		n = config.DefaultPostsPerIndex
	}
	limit := min(n, len(posts))

	latest, err := renderLatest(posts[:limit])
	if err != nil {
		return "", fmt.Errorf("render latest posts: %w", err)
	}
	archive, err := renderArchive(posts)
	if err != nil {
		return "", fmt.Errorf("render archive: %w", err)
	}

	return splice(e.index, e.indexReplacer(), []insertion{
		{marker: MarkerLatestPosts, content: latest},
		{marker: MarkerArchiveList, content: archive},
	}), nil
}

// indexReplacer returns the replacer for the index template text outside the
// markers. Without IndexSiteTokens it is the identity.
func (e *Engine) indexReplacer() *strings.Replacer {
	if !e.site.IndexSiteTokens {
		return strings.NewReplacer()
	}
	return strings.NewReplacer(
		TokenSiteTitle, e.site.Title,
		TokenBaseURL, e.site.BaseURL,
		TokenAuthor, e.site.Author,
		TokenDescription, e.site.Description,
	)
}

type insertion struct {
	marker  string
	content string
	at      int
}

// splice replaces the first occurrence of each marker with its content and
// applies r to the template text around them. Inserted content is not passed
// through r.
func splice(tmpl string, r *strings.Replacer, insertions []insertion) string {
	found := make([]insertion, 0, len(insertions))
	for _, in := range insertions {
		if at := strings.Index(tmpl, in.marker); at >= 0 {
			in.at = at
			found = append(found, in)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].at < found[j].at })

	var b strings.Builder
	pos := 0
	for _, in := range found {
		b.WriteString(r.Replace(tmpl[pos:in.at]))
		b.WriteString(in.content)
		pos = in.at + len(in.marker)
	}
	b.WriteString(r.Replace(tmpl[pos:]))
	return b.String()
}
