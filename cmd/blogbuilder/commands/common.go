package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
)

// Global carries process-wide state into every command.
type Global struct {
	// Context is canceled on SIGINT/SIGTERM.
	Context context.Context
	Logger  *slog.Logger
	// Out receives user-facing progress lines.
	Out io.Writer
}

func (g *Global) context() context.Context {
	if g == nil || g.Context == nil {
		return context.Background()
	}
	return g.Context
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Root    string           `short:"C" help:"Site root directory" default:"." type:"path"`
	Config  string           `short:"c" help:"Configuration file path, relative to the site root" default:"site.json"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"withargs" help:"Generate post pages, index, RSS feed and sitemap (default)"`
	Clean CleanCmd `cmd:"" help:"Delete generated files"`
	Init  InitCmd  `cmd:"" help:"Scaffold a new site in the site root"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Layout returns the site layout selected by --root and --config.
func (c *CLI) Layout() config.Layout {
	layout := config.NewLayout(c.Root)
	layout.Config = c.Config
	return layout
}
