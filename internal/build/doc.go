// Package build runs the site generation pipeline.
//
// A build validates the site inputs, loads the configuration, discovers and
// assembles every post, sorts them newest first and then writes the post
// pages, the index, the RSS feed and the sitemap, in that order. Every
// artifact is derived from the same sorted post collection.
//
// Builds are synchronous. The context is checked between stages and between
// files; a canceled build stops before its next write and leaves whatever was
// already written in place.
package build
