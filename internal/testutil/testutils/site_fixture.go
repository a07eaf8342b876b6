package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// DefaultSiteJSON is a complete site configuration for tests.
const DefaultSiteJSON = `{
	"title": "Retro Blog",
	"baseUrl": "https://example.com",
	"author": "Sam",
	"description": "Notes from the terminal",
	"language": "en",
	"postsPerIndex": 3
}
`

// DefaultPostTemplate exercises every post token.
const DefaultPostTemplate = `<!doctype html>
<html lang="en">
<head><title>{{TITLE}} | {{SITE_TITLE}}</title>
<meta name="description" content="{{DESCRIPTION}}"></head>
<body>
<p class="meta">{{DATE}} {{CATEGORY}} {{READING_TIME}}</p>
<article>{{CONTENT}}</article>
<footer>&copy; {{YEAR}} {{AUTHOR}} <a href="{{BASE_URL}}/">home</a></footer>
</body>
</html>
`

// DefaultIndexTemplate carries both index markers.
const DefaultIndexTemplate = `<!doctype html>
<html lang="en">
<head><title>{{SITE_TITLE}}</title></head>
<body>
<section id="latest">
<!-- LATEST_POSTS -->
</section>
<ul id="archive">
<!-- ARCHIVE_LIST -->
</ul>
</body>
</html>
`

// SiteFixture is a blog checkout in a temporary directory.
type SiteFixture struct {
	t    *testing.T
	Root string
}

// NewSiteFixture creates a site with the default configuration, both
// templates and an empty content directory.
func NewSiteFixture(t *testing.T) *SiteFixture {
	t.Helper()
	s := &SiteFixture{t: t, Root: t.TempDir()}
	s.WriteFile("site.json", DefaultSiteJSON)
	s.WriteFile("post-template.html", DefaultPostTemplate)
	s.WriteFile("index.template.html", DefaultIndexTemplate)
	s.Mkdir("content/posts")
	return s
}

// WriteFile writes content to a path relative to the site root, creating
// parent directories.
func (s *SiteFixture) WriteFile(relativePath, content string) *SiteFixture {
	s.t.Helper()
	fullPath := filepath.Join(s.Root, filepath.FromSlash(relativePath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		s.t.Fatalf("create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o600); err != nil {
		s.t.Fatalf("write %s: %v", fullPath, err)
	}
	return s
}

// Mkdir creates a directory relative to the site root.
func (s *SiteFixture) Mkdir(relativePath string) *SiteFixture {
	s.t.Helper()
	if err := os.MkdirAll(filepath.Join(s.Root, filepath.FromSlash(relativePath)), 0o750); err != nil {
		s.t.Fatalf("create directory %s: %v", relativePath, err)
	}
	return s
}

// Remove deletes a path relative to the site root.
func (s *SiteFixture) Remove(relativePath string) *SiteFixture {
	s.t.Helper()
	if err := os.RemoveAll(filepath.Join(s.Root, filepath.FromSlash(relativePath))); err != nil {
		s.t.Fatalf("remove %s: %v", relativePath, err)
	}
	return s
}

// AddPost writes content/posts/<name>.md with the given front matter values
// and body.
func (s *SiteFixture) AddPost(name, title, date, body string, extra ...string) *SiteFixture {
	s.t.Helper()
	if len(extra)%2 != 0 {
		s.t.Fatalf("AddPost %s: extra front matter must be key/value pairs", name)
	}
	doc := fmt.Sprintf("---\ntitle: %s\ndate: %s\n", title, date)
	for i := 0; i < len(extra); i += 2 {
		doc += fmt.Sprintf("%s: %s\n", extra[i], extra[i+1])
	}
	doc += "---\n" + body
	return s.WriteFile("content/posts/"+name+".md", doc)
}

// Files returns a FileAssertions rooted at the site.
func (s *SiteFixture) Files() *FileAssertions {
	return NewFileAssertions(s.t, s.Root)
}
