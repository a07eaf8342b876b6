// Package feed builds the RSS 2.0 feed of the newest posts.
package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

// MaxItems is the number of posts included in the feed.
const MaxItems = 20

// TimeFormat is the RFC 1123 date format used by RSS, always in GMT.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	Language      string `xml:"language"`
	LastBuildDate string `xml:"lastBuildDate"`
	Items         []item `xml:"item"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// Builder renders the feed for a site.
type Builder struct {
	site config.Site
	now  func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock sets the clock used for lastBuildDate.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder returns a feed Builder for site.
func NewBuilder(site config.Site, opts ...Option) *Builder {
	b := &Builder{site: site, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the feed document for posts, which must already be sorted
// newest first. Only the first MaxItems posts are included.
func (b *Builder) Build(posts []post.Post) ([]byte, error) {
	posts = posts[:min(len(posts), MaxItems)]

	items := make([]item, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		published, err := time.Parse(post.DateLayout, p.Date)
		if err != nil {
			return nil, fmt.Errorf("feed item %s: %w", p.Slug, err)
		}
		link := post.URL(b.site.BaseURL, p.Slug)
		items = append(items, item{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			PubDate:     published.UTC().Format(TimeFormat),
			Description: p.Snippet,
		})
	}

	doc := rss{
		Version: "2.0",
		Channel: channel{
			Title:         b.site.Title,
			Link:          b.site.BaseURL,
			Description:   b.site.Description,
			Language:      b.site.Language,
			LastBuildDate: b.now().UTC().Format(TimeFormat),
			Items:         items,
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}
	return append(append([]byte(xml.Header), out...), '\n'), nil
}
