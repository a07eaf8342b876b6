package logfields

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"BuildID", KeyBuildID, "b-1", BuildID("b-1")},
		{"Stage", KeyStage, "discover", Stage("discover")},
		{"File", KeyFile, "hello.md", File("hello.md")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Slug", KeySlug, "hello-world", Slug("hello-world")},
		{"Title", KeyTitle, "Hello World", Title("Hello World")},
		{"Date", KeyDate, "2025-01-01", Date("2025-01-01")},
		{"Category", KeyCategory, "validation", Category("validation")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if tc.attr.Value.String() != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, tc.attr.Value.String())
		}
	}
}

func TestCountHelpers(t *testing.T) {
	if a := Posts(3); a.Key != KeyPosts || a.Value.Int64() != 3 {
		t.Fatalf("unexpected posts attr: %v", a)
	}
	if a := Items(20); a.Key != KeyItems || a.Value.Int64() != 20 {
		t.Fatalf("unexpected items attr: %v", a)
	}
	if a := URLs(3); a.Key != KeyURLs || a.Value.Int64() != 3 {
		t.Fatalf("unexpected urls attr: %v", a)
	}
	if a := Removed(0); a.Key != KeyRemoved || a.Value.Int64() != 0 {
		t.Fatalf("unexpected removed attr: %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("expected empty error value, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("unexpected error attr: %v", a)
	}
}

func TestSince(t *testing.T) {
	a := Since(time.Now().Add(-5 * time.Millisecond))
	if a.Key != KeyDurationMS {
		t.Fatalf("expected key %s, got %s", KeyDurationMS, a.Key)
	}
	if a.Value.Float64() < 5 {
		t.Fatalf("expected at least 5ms, got %v", a.Value.Float64())
	}
}
