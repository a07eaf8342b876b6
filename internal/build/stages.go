package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/feed"
	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/observability"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
	"git.home.luguber.info/inful/blogbuilder/internal/sitemap"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// Artifact kinds reported to the metrics recorder.
const (
	ArtifactPost    = "post"
	ArtifactIndex   = "index"
	ArtifactFeed    = "feed"
	ArtifactSitemap = "sitemap"
)

// MarkdownExt is the extension of post source files.
const MarkdownExt = ".md"

func (b *Builder) loadConfig(ctx context.Context, st *buildState) error {
	path := b.layout.ConfigPath()
	site, err := config.Load(path)
	if errors.Is(err, config.ErrNotFound) {
		return foundationerrors.ConfigError(ErrMissingConfiguration, "site configuration not found").
			WithContext("path", path).
			Build()
	}
	if err != nil {
		return foundationerrors.ConfigError(err, "invalid site configuration").
			WithContext("path", path).
			Build()
	}

	st.site = site
	observability.DebugContext(ctx, "Loaded site configuration",
		logfields.Path(path),
		logfields.Title(site.Title))
	return nil
}

// discover lists the Markdown files directly inside the content directory,
// ordered by file name.
func (b *Builder) discover(ctx context.Context, st *buildState) error {
	dir := b.layout.ContentDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fileSystemError("failed to read content directory", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), MarkdownExt) {
			continue
		}
		st.sources = append(st.sources, filepath.Join(dir, entry.Name()))
	}

	if len(st.sources) == 0 {
		observability.WarnContext(ctx, "No posts found", logfields.Path(dir))
	}
	observability.DebugContext(ctx, "Discovered posts", logfields.Posts(len(st.sources)))
	return nil
}

func (b *Builder) assemble(ctx context.Context, st *buildState) error {
	assembler := post.NewAssembler(b.renderer)
	posts := make([]post.Post, 0, len(st.sources))
	for _, path := range st.sources {
		if err := checkContext(ctx); err != nil {
			return err
		}

		// #nosec G304 -- path comes from listing the content directory
		raw, err := os.ReadFile(path)
		if err != nil {
			return fileSystemError("failed to read post", path, err)
		}

		p, err := assembler.Assemble(post.RawDocument{Path: path, Text: string(raw)})
		if err != nil {
			return err
		}
		observability.DebugContext(ctx, "Assembled post",
			logfields.File(path),
			logfields.Slug(p.Slug),
			logfields.Date(p.Date))
		posts = append(posts, p)
	}

	post.Sort(posts)
	reportSlugCollisions(ctx, posts)
	st.posts = posts
	return nil
}

// reportSlugCollisions logs posts whose pages overwrite each other. Colliding
// posts are still written; the last one in sort order wins.
func reportSlugCollisions(ctx context.Context, posts []post.Post) {
	seen := make(map[string]string, len(posts))
	for i := range posts {
		p := &posts[i]
		if p.Slug == "" {
			observability.WarnContext(ctx, "Post has an empty slug",
				logfields.File(p.SourcePath),
				logfields.Title(p.Title))
		}
		if first, ok := seen[p.Slug]; ok {
			observability.DebugContext(ctx, "Slug collision, page will be overwritten",
				logfields.Slug(p.Slug),
				logfields.File(p.SourcePath),
				logfields.Path(first))
			continue
		}
		seen[p.Slug] = p.SourcePath
	}
}

func (b *Builder) loadEngine(site config.Site) (*templates.Engine, error) {
	postTemplate, err := b.readTemplate(b.layout.PostTemplatePath())
	if err != nil {
		return nil, err
	}
	indexTemplate, err := b.readTemplate(b.layout.IndexTemplatePath())
	if err != nil {
		return nil, err
	}
	return templates.NewEngine(site, postTemplate, indexTemplate), nil
}

func (b *Builder) readTemplate(path string) (string, error) {
	// #nosec G304 -- template paths come from the site layout
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", foundationerrors.NotFoundError(ErrMissingTemplate, "template not found").
			WithContext("path", path).
			Build()
	}
	if err != nil {
		return "", fileSystemError("failed to read template", path, err)
	}
	return string(data), nil
}

func (b *Builder) writePosts(ctx context.Context, st *buildState) error {
	engine, err := b.loadEngine(*st.site)
	if err != nil {
		return err
	}
	st.engine = engine

	postsDir := b.layout.PostsDir()
	if err := os.MkdirAll(postsDir, 0o750); err != nil {
		return fileSystemError("failed to create posts directory", postsDir, err)
	}

	for i := range st.posts {
		if err := checkContext(ctx); err != nil {
			return err
		}
		p := &st.posts[i]
		path := b.layout.PostPath(p.Slug)
		if err := b.write(st, path, ArtifactPost, []byte(engine.RenderPost(*p))); err != nil {
			return err
		}
		b.progress("Generated post: %s", path)
	}
	return nil
}

func (b *Builder) writeIndex(_ context.Context, st *buildState) error {
	html, err := st.engine.RenderIndex(st.posts)
	if err != nil {
		return foundationerrors.RenderError(err, "failed to render index").
			WithContext("path", b.layout.IndexTemplatePath()).
			Build()
	}

	path := b.layout.IndexPath()
	if err := b.write(st, path, ArtifactIndex, []byte(html)); err != nil {
		return err
	}
	b.progress("Generated index: %s", path)
	return nil
}

func (b *Builder) writeFeed(ctx context.Context, st *buildState) error {
	data, err := feed.NewBuilder(*st.site, feed.WithClock(b.now)).Build(st.posts)
	if err != nil {
		return foundationerrors.InternalError(err, "failed to encode feed").Build()
	}

	path := b.layout.FeedPath()
	if err := b.write(st, path, ArtifactFeed, data); err != nil {
		return err
	}
	observability.DebugContext(ctx, "Feed written", logfields.Items(min(len(st.posts), feed.MaxItems)))
	b.progress("Generated feed: %s", path)
	return nil
}

func (b *Builder) writeSitemap(ctx context.Context, st *buildState) error {
	data, err := sitemap.Build(st.site.BaseURL, st.posts)
	if err != nil {
		return foundationerrors.InternalError(err, "failed to encode sitemap").Build()
	}

	path := b.layout.SitemapPath()
	if err := b.write(st, path, ArtifactSitemap, data); err != nil {
		return err
	}
	observability.DebugContext(ctx, "Sitemap written", logfields.URLs(len(st.posts)+2))
	b.progress("Generated sitemap: %s", path)
	return nil
}

func (b *Builder) write(st *buildState, path, kind string, data []byte) error {
	if err := writeArtifact(path, data); err != nil {
		return err
	}
	st.written = append(st.written, path)
	b.recorder.IncArtifact(kind)
	return nil
}
