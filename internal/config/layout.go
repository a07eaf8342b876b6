package config

import "path/filepath"

// Conventional file and directory names of a blog checkout.
const (
	ConfigFile        = "site.json"
	ContentDir        = "content/posts"
	PostsDir          = "posts"
	PostTemplateFile  = "post-template.html"
	IndexTemplateFile = "index.template.html"
	IndexFile         = "index.html"
	FeedFile          = "feed.xml"
	SitemapFile       = "sitemap.xml"
)

// Layout resolves every input and output path of a site relative to Root.
type Layout struct {
	Root string
	// Config overrides the configuration path. Relative values are resolved
	// against Root; empty means ConfigFile.
	Config string
}

// NewLayout returns the conventional layout rooted at root.
func NewLayout(root string) Layout {
	if root == "" {
		root = "."
	}
	return Layout{Root: root}
}

func (l Layout) join(name string) string {
	return filepath.Join(l.Root, filepath.FromSlash(name))
}

// ConfigPath returns the site configuration file.
func (l Layout) ConfigPath() string {
	if l.Config == "" {
		return l.join(ConfigFile)
	}
	if filepath.IsAbs(l.Config) {
		return l.Config
	}
	return l.join(l.Config)
}

func (l Layout) ContentDir() string        { return l.join(ContentDir) }
func (l Layout) PostsDir() string          { return l.join(PostsDir) }
func (l Layout) PostTemplatePath() string  { return l.join(PostTemplateFile) }
func (l Layout) IndexTemplatePath() string { return l.join(IndexTemplateFile) }
func (l Layout) IndexPath() string         { return l.join(IndexFile) }
func (l Layout) FeedPath() string          { return l.join(FeedFile) }
func (l Layout) SitemapPath() string       { return l.join(SitemapFile) }

// PostPath returns the output file for a post slug.
func (l Layout) PostPath(slug string) string {
	return filepath.Join(l.PostsDir(), slug+".html")
}

// TopLevelArtifacts lists the generated files that live directly under Root.
func (l Layout) TopLevelArtifacts() []string {
	return []string{l.IndexPath(), l.FeedPath(), l.SitemapPath()}
}
