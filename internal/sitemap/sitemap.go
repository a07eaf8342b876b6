// Package sitemap builds sitemap.xml for the generated site.
package sitemap

import (
	"encoding/xml"
	"fmt"

	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

// Namespace is the sitemap protocol namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// AboutPage is listed in every sitemap next to the site root.
const AboutPage = "about.html"

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc string `xml:"loc"`
}

// URLs lists the site root, the about page and every post page, in that
// order.
func URLs(baseURL string, posts []post.Post) []string {
	urls := make([]string, 0, len(posts)+2)
	urls = append(urls, baseURL+"/", baseURL+"/"+AboutPage)
	for i := range posts {
		urls = append(urls, post.URL(baseURL, posts[i].Slug))
	}
	return urls
}

// Build renders the sitemap document.
func Build(baseURL string, posts []post.Post) ([]byte, error) {
	set := urlSet{Xmlns: Namespace}
	for _, loc := range URLs(baseURL, posts) {
		set.URLs = append(set.URLs, url{Loc: loc})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append(append([]byte(xml.Header), out...), '\n'), nil
}
