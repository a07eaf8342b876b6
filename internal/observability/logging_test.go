package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWithBuildIDAndStage(t *testing.T) {
	ctx := context.Background()
	ctx = WithBuildID(ctx, "build-1")
	ctx = WithStage(ctx, "discover")

	lc := extractLogContext(ctx)
	require.Equal(t, "build-1", lc.BuildID)
	require.Equal(t, "discover", lc.Stage)
}

func TestOverwriteContextValue(t *testing.T) {
	ctx := WithStage(context.Background(), "discover")
	ctx = WithStage(ctx, "assemble")

	require.Equal(t, "assemble", extractLogContext(ctx).Stage)
}

func TestEmptyContext(t *testing.T) {
	lc := extractLogContext(context.Background())
	require.Empty(t, lc.BuildID)
	require.Empty(t, lc.Stage)
}

func TestNewBuildID(t *testing.T) {
	id := NewBuildID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.NotEqual(t, id, NewBuildID())
}

func TestInfoContext(t *testing.T) {
	buf := captureDefault(t)

	ctx := WithBuildID(context.Background(), "build-1")
	ctx = WithStage(ctx, "feed")
	InfoContext(ctx, "Generated feed", slog.Int("items", 3))

	out := buf.String()
	require.Contains(t, out, `"build_id":"build-1"`)
	require.Contains(t, out, `"stage":"feed"`)
	require.Contains(t, out, `"items":3`)
	require.Contains(t, out, "Generated feed")
}

func TestLevels(t *testing.T) {
	buf := captureDefault(t)
	ctx := WithBuildID(context.Background(), "build-2")

	DebugContext(ctx, "debug message")
	WarnContext(ctx, "warn message")
	ErrorContext(ctx, "error message")

	out := buf.String()
	require.Contains(t, out, `"level":"DEBUG"`)
	require.Contains(t, out, `"level":"WARN"`)
	require.Contains(t, out, `"level":"ERROR"`)
}
