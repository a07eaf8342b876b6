package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

var fixedNow = time.Date(2025, 10, 5, 12, 30, 0, 0, time.UTC)

func testSite() config.Site {
	return config.Site{
		Title:       "My Blog",
		BaseURL:     "https://example.com",
		Description: "Notes & thoughts",
		Language:    "en",
	}
}

func build(t *testing.T, posts []post.Post) (string, rss) {
	t.Helper()
	out, err := NewBuilder(testSite(), WithClock(func() time.Time { return fixedNow })).Build(posts)
	require.NoError(t, err)

	var doc rss
	require.NoError(t, xml.Unmarshal(out, &doc))
	return string(out), doc
}

func TestBuild_SinglePost(t *testing.T) {
	out, doc := build(t, []post.Post{{
		Title:   "Hello World",
		Date:    "2025-10-01",
		Slug:    "hello-world",
		Snippet: "Hi...",
	}})

	require.True(t, strings.HasPrefix(out, xml.Header))
	require.Equal(t, "2.0", doc.Version)
	require.Equal(t, "My Blog", doc.Channel.Title)
	require.Equal(t, "https://example.com", doc.Channel.Link)
	require.Equal(t, "en", doc.Channel.Language)
	require.Equal(t, "Sun, 05 Oct 2025 12:30:00 GMT", doc.Channel.LastBuildDate)

	require.Len(t, doc.Channel.Items, 1)
	it := doc.Channel.Items[0]
	require.Equal(t, "Hello World", it.Title)
	require.Equal(t, "https://example.com/posts/hello-world.html", it.Link)
	require.Equal(t, it.Link, it.GUID)
	require.Equal(t, "Wed, 01 Oct 2025 00:00:00 GMT", it.PubDate)
	require.Equal(t, "Hi...", it.Description)
}

func TestBuild_EscapesText(t *testing.T) {
	out, doc := build(t, []post.Post{{
		Title:   "A & B <C>",
		Date:    "2025-10-01",
		Slug:    "a-b-c",
		Snippet: "x &amp; y...",
	}})

	require.Contains(t, out, "<title>A &amp; B &lt;C&gt;</title>")
	require.Contains(t, out, "<description>Notes &amp; thoughts</description>")
	require.Contains(t, out, "<description>x &amp;amp; y...</description>")
	require.Equal(t, "A & B <C>", doc.Channel.Items[0].Title)
}

func TestBuild_EscapesQuotesAsCharacterReferences(t *testing.T) {
	out, doc := build(t, []post.Post{{
		Title:   `Don't say "never"`,
		Date:    "2025-10-01",
		Slug:    "dont-say-never",
		Snippet: "line one\nline two...",
	}})

	require.Contains(t, out, "<title>Don&#39;t say &#34;never&#34;</title>")
	require.Contains(t, out, "<description>line one&#xA;line two...</description>")
	require.NotContains(t, out, "&apos;")
	require.NotContains(t, out, "&quot;")
	require.Equal(t, `Don't say "never"`, doc.Channel.Items[0].Title)
	require.Equal(t, "line one\nline two...", doc.Channel.Items[0].Description)
}

func TestBuild_LimitsItems(t *testing.T) {
	posts := make([]post.Post, 25)
	for i := range posts {
		posts[i] = post.Post{Title: fmt.Sprintf("P%d", i), Date: "2025-01-01", Slug: fmt.Sprintf("p%d", i)}
	}

	_, doc := build(t, posts)
	require.Len(t, doc.Channel.Items, MaxItems)
	require.Equal(t, "P0", doc.Channel.Items[0].Title)
	require.Equal(t, "P19", doc.Channel.Items[MaxItems-1].Title)
}

func TestBuild_NoPosts(t *testing.T) {
	_, doc := build(t, nil)
	require.Empty(t, doc.Channel.Items)
	require.Equal(t, "My Blog", doc.Channel.Title)
}

func TestBuild_InvalidDate(t *testing.T) {
	_, err := NewBuilder(testSite()).Build([]post.Post{{Title: "x", Date: "soon", Slug: "x"}})
	require.Error(t, err)
}
