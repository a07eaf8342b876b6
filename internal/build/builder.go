package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/build/validation"
	"git.home.luguber.info/inful/blogbuilder/internal/config"
	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/observability"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// Stage names used in logs and metrics.
const (
	StageValidate = "validate"
	StageConfig   = "config"
	StageDiscover = "discover"
	StageAssemble = "assemble"
	StagePosts    = "posts"
	StageIndex    = "index"
	StageFeed     = "feed"
	StageSitemap  = "sitemap"
	StageClean    = "clean"
)

// Builder generates a site from the inputs described by a config.Layout.
type Builder struct {
	layout   config.Layout
	renderer markdown.Renderer
	recorder metrics.Recorder
	rules    *validation.RuleChain
	now      func() time.Time
	out      io.Writer
}

// Option configures a Builder.
type Option func(*Builder)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) { b.recorder = r }
}

// WithRenderer replaces the Markdown renderer.
func WithRenderer(r markdown.Renderer) Option {
	return func(b *Builder) { b.renderer = r }
}

// WithClock sets the clock used for build timestamps and the feed's
// lastBuildDate.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithOutput sets where per-file progress lines ("Generated post: ...") are
// printed. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(b *Builder) { b.out = w }
}

// NewBuilder returns a Builder for layout.
func NewBuilder(layout config.Layout, opts ...Option) *Builder {
	b := &Builder{
		layout:   layout,
		renderer: markdown.New(markdown.Options{}),
		recorder: metrics.NoopRecorder{},
		rules:    validation.DefaultRuleChain(),
		now:      time.Now,
		out:      io.Discard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Layout returns the layout the builder reads from and writes to.
func (b *Builder) Layout() config.Layout {
	return b.layout
}

// Validate checks that the configuration file, the content directory and both
// templates exist. The returned error wraps ErrMissingConfiguration,
// ErrMissingContentDirectory or ErrMissingTemplate.
func (b *Builder) Validate(ctx context.Context) error {
	return b.rules.Validate(ctx, validation.Context{Layout: b.layout, Logger: slog.Default()})
}

// buildState carries data between stages of a single run.
type buildState struct {
	site    *config.Site
	sources []string
	posts   []post.Post
	engine  *templates.Engine
	written []string
}

// Run executes a full build. The returned Result is never nil.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := b.now()
	result := &Result{BuildID: observability.NewBuildID(), StartTime: start}
	ctx = observability.WithBuildID(ctx, result.BuildID)
	observability.InfoContext(ctx, "Starting build", logfields.Path(b.layout.Root))

	st := &buildState{}
	stages := []struct {
		name string
		fn   func(context.Context, *buildState) error
	}{
		{StageValidate, func(ctx context.Context, _ *buildState) error { return b.Validate(ctx) }},
		{StageConfig, b.loadConfig},
		{StageDiscover, b.discover},
		{StageAssemble, b.assemble},
		{StagePosts, b.writePosts},
		{StageIndex, b.writeIndex},
		{StageFeed, b.writeFeed},
		{StageSitemap, b.writeSitemap},
	}

	var err error
	for _, s := range stages {
		if err = b.runStage(ctx, s.name, st, s.fn); err != nil {
			break
		}
	}

	result.Posts = len(st.posts)
	result.Artifacts = st.written
	result.EndTime = b.now()
	result.Duration = result.EndTime.Sub(start)
	result.Status = statusFor(err)

	b.recorder.ObserveBuildDuration(result.Duration)
	b.recorder.IncBuildOutcome(outcomeLabel(result.Status))

	if err != nil {
		observability.ErrorContext(ctx, "Build failed", failureAttrs(err, result.Duration)...)
		return result, err
	}

	b.recorder.SetPosts(result.Posts)
	observability.InfoContext(ctx, "Build completed",
		logfields.Posts(result.Posts),
		logfields.Items(len(result.Artifacts)),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return result, nil
}

func (b *Builder) runStage(ctx context.Context, name string, st *buildState, fn func(context.Context, *buildState) error) error {
	if err := checkContext(ctx); err != nil {
		b.recorder.IncStageResult(name, metrics.ResultCanceled)
		return err
	}

	stageStart := time.Now()
	ctx = observability.WithStage(ctx, name)
	observability.DebugContext(ctx, "Stage started")

	err := fn(ctx, st)
	b.recorder.ObserveStageDuration(name, time.Since(stageStart))
	b.recorder.IncStageResult(name, resultLabel(err))
	if err != nil {
		return err
	}

	observability.DebugContext(ctx, "Stage completed", logfields.Since(stageStart))
	return nil
}

func (b *Builder) progress(format string, args ...any) {
	_, _ = fmt.Fprintf(b.out, format+"\n", args...)
}

// failureAttrs describes a failed build: the error, its category and the
// offending source file when one is known.
func failureAttrs(err error, d time.Duration) []slog.Attr {
	attrs := []slog.Attr{
		logfields.Error(err),
		logfields.DurationMS(float64(d.Milliseconds())),
	}
	if ce, ok := foundationerrors.AsClassified(err); ok {
		attrs = append(attrs, logfields.Category(string(ce.Category())))
		if file, ok := ce.Context().GetString("file"); ok {
			attrs = append(attrs, logfields.File(file))
		}
	}
	return attrs
}

func resultLabel(err error) metrics.ResultLabel {
	switch statusFor(err) {
	case StatusSuccess:
		return metrics.ResultSuccess
	case StatusCanceled:
		return metrics.ResultCanceled
	default:
		return metrics.ResultFailed
	}
}

func outcomeLabel(s Status) metrics.BuildOutcomeLabel {
	switch s {
	case StatusSuccess:
		return metrics.BuildOutcomeSuccess
	case StatusCanceled:
		return metrics.BuildOutcomeCanceled
	default:
		return metrics.BuildOutcomeFailed
	}
}
