package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/observability"
)

// Clean deletes every file in the posts output directory and the top-level
// generated artifacts. Missing files are not an error and no configuration is
// needed. Subdirectories of the posts directory are left alone.
func (b *Builder) Clean(ctx context.Context) (*CleanResult, error) {
	start := time.Now()
	ctx = observability.WithStage(observability.WithBuildID(ctx, observability.NewBuildID()), StageClean)
	result := &CleanResult{}

	err := b.clean(ctx, result)
	result.Status = statusFor(err)

	b.recorder.ObserveStageDuration(StageClean, time.Since(start))
	b.recorder.IncStageResult(StageClean, resultLabel(err))
	b.recorder.IncBuildOutcome(outcomeLabel(result.Status))

	if err != nil {
		observability.ErrorContext(ctx, "Clean failed", logfields.Error(err))
		return result, err
	}
	observability.InfoContext(ctx, "Cleaned generated files",
		logfields.Removed(len(result.Removed)),
		logfields.Since(start))
	return result, nil
}

func (b *Builder) clean(ctx context.Context, result *CleanResult) error {
	postsDir := b.layout.PostsDir()
	entries, err := os.ReadDir(postsDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fileSystemError("failed to read posts directory", postsDir, err)
	}

	targets := make([]string, 0, len(entries)+3)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		targets = append(targets, filepath.Join(postsDir, entry.Name()))
	}
	targets = append(targets, b.layout.TopLevelArtifacts()...)

	for _, path := range targets {
		if err := checkContext(ctx); err != nil {
			return err
		}
		err := os.Remove(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			continue
		case err != nil:
			return fileSystemError("failed to remove generated file", path, err)
		}
		observability.DebugContext(ctx, "Removed generated file", logfields.Path(path))
		result.Removed = append(result.Removed, path)
	}
	return nil
}
