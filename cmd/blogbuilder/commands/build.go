package commands

import (
	"fmt"
	"log/slog"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogbuilder/internal/build"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Clean       bool   `help:"Delete generated files instead of building"`
	MetricsFile string `name:"metrics-file" help:"Write build metrics in Prometheus text format to this file" type:"path"`
	Footnotes   bool   `help:"Enable Markdown footnote syntax"`
	HardWraps   bool   `name:"hard-wraps" help:"Render single newlines in paragraphs as line breaks"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	if b.Clean {
		return RunClean(g, root)
	}
	return RunBuild(g, root, b)
}

// RunBuild performs a full build of the site selected by root.
func RunBuild(g *Global, root *CLI, cmd *BuildCmd) error {
	metricsFile := cmd.MetricsFile
	out := g.out()
	_, _ = fmt.Fprintln(out, "Starting blogbuilder build")

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var registry *prom.Registry
	if metricsFile != "" {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	renderer := markdown.New(markdown.Options{
		Footnotes: cmd.Footnotes,
		HardWraps: cmd.HardWraps,
	})
	builder := build.NewBuilder(root.Layout(),
		build.WithRenderer(renderer),
		build.WithRecorder(recorder),
		build.WithOutput(out))
	result, err := builder.Run(g.context())

	if registry != nil {
		// Failed builds are recorded too.
		if werr := metrics.WriteTextfile(metricsFile, registry); werr != nil {
			slog.Warn("Failed to write metrics file", "path", metricsFile, "error", werr)
		}
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Built %d posts in %s\n", result.Posts, result.Duration.Round(time.Millisecond))
	return nil
}
