// Package post assembles front matter and Markdown into render-ready posts.
package post

import (
	"errors"
	"sort"
)

// DateLayout is the only accepted front matter date format.
const DateLayout = "2006-01-02"

// ErrInvalidDate indicates a date that is not a YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("date must be a YYYY-MM-DD calendar date")

// ErrInvalidSlug indicates an explicit slug that would place the page outside
// the flat posts directory.
var ErrInvalidSlug = errors.New("slug must not contain a path separator")

// RawDocument is a source file as read from disk.
type RawDocument struct {
	Path string
	Text string
}

// Post is a fully assembled post.
//
// Category and Description keep the raw front matter value and are empty
// when absent; renderers apply their own fallbacks.
type Post struct {
	Title       string
	Date        string
	Year        string
	Category    string
	Description string
	Slug        string
	ReadingTime int
	HTML        string
	Snippet     string
	SourcePath  string
}

// URL returns the absolute URL of the page for slug under baseURL.
func URL(baseURL, slug string) string {
	return baseURL + "/posts/" + slug + ".html"
}

// Sort orders posts newest first by their YYYY-MM-DD date. Posts sharing a
// date keep their relative order.
func Sort(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
}
