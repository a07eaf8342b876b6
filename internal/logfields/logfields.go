package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyFile       = "file"
	KeyPath       = "path"
	KeySlug       = "slug"
	KeyTitle      = "title"
	KeyDate       = "date"
	KeyPosts      = "posts"
	KeyItems      = "items"
	KeyURLs       = "urls"
	KeyRemoved    = "removed"
	KeyError      = "error"
	KeyCategory   = "category"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Date(d string) slog.Attr         { return slog.String(KeyDate, d) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Posts(n int) slog.Attr           { return slog.Int(KeyPosts, n) }
func Items(n int) slog.Attr           { return slog.Int(KeyItems, n) }
func URLs(n int) slog.Attr            { return slog.Int(KeyURLs, n) }
func Removed(n int) slog.Attr         { return slog.Int(KeyRemoved, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

// Since reports the elapsed time from start in milliseconds.
func Since(start time.Time) slog.Attr {
	return DurationMS(float64(time.Since(start).Microseconds()) / 1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
