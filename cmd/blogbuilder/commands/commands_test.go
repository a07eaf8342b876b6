package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/build"
	"git.home.luguber.info/inful/blogbuilder/internal/config"
	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	helpers "git.home.luguber.info/inful/blogbuilder/internal/testutil/testutils"
)

// run parses args like main does and executes the selected command.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("blogbuilder"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) { t.Fatalf("unexpected exit for args %v", args) }),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = kctx.Run(&Global{Context: context.Background(), Out: &out}, &cli)
	return out.String(), err
}

func TestBuild_DefaultCommand(t *testing.T) {
	site := helpers.NewSiteFixture(t).AddPost("hello", "Hello World", "2025-10-01", "# Hi\n")

	out, err := run(t, "--root", site.Root)
	require.NoError(t, err)
	require.Contains(t, out, "Starting blogbuilder build")
	require.Contains(t, out, "Generated post: "+filepath.Join(site.Root, "posts", "hello-world.html"))
	require.Contains(t, out, "Built 1 posts in")

	site.Files().
		AssertFileExists("posts/hello-world.html").
		AssertFileExists("index.html").
		AssertFileExists("feed.xml").
		AssertFileExists("sitemap.xml")
}

func TestBuild_CustomConfigPath(t *testing.T) {
	site := helpers.NewSiteFixture(t).
		AddPost("hello", "Hello World", "2025-10-01", "x").
		WriteFile("config/site.yaml", "title: YAML Blog\nbaseUrl: https://yaml.example\nindexSiteTokens: true\n").
		Remove("site.json")

	_, err := run(t, "build", "-C", site.Root, "--config", "config/site.yaml")
	require.NoError(t, err)
	site.Files().
		AssertFileContains("index.html", "<title>YAML Blog</title>").
		AssertFileContains("sitemap.xml", "https://yaml.example/posts/hello-world.html")
}

func TestBuild_MarkdownFlags(t *testing.T) {
	site := helpers.NewSiteFixture(t).
		AddPost("notes", "Notes", "2025-10-01", "one\ntwo\n\nClaim[^1]\n\n[^1]: Source\n")

	_, err := run(t, "build", "--root", site.Root)
	require.NoError(t, err)
	site.Files().AssertFileNotContains("posts/notes.html", "<br>")

	_, err = run(t, "build", "--root", site.Root, "--hard-wraps", "--footnotes")
	require.NoError(t, err)
	site.Files().
		AssertFileContains("posts/notes.html", "one<br>").
		AssertFileContains("posts/notes.html", "footnote")
}

func TestBuild_MissingConfigurationExitCode(t *testing.T) {
	site := helpers.NewSiteFixture(t).Remove("site.json")

	_, err := run(t, "build", "--root", site.Root)
	require.ErrorIs(t, err, build.ErrMissingConfiguration)
	require.Equal(t, 7, foundationerrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestBuild_MalformedPostExitCode(t *testing.T) {
	site := helpers.NewSiteFixture(t).WriteFile("content/posts/bad.md", "# no front matter")

	_, err := run(t, "--root", site.Root)
	require.Error(t, err)
	require.Equal(t, 2, foundationerrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestBuild_WritesMetricsFile(t *testing.T) {
	site := helpers.NewSiteFixture(t).AddPost("hello", "Hello World", "2025-10-01", "x")
	metricsFile := filepath.Join(t.TempDir(), "blogbuilder.prom")

	_, err := run(t, "build", "--root", site.Root, "--metrics-file", metricsFile)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	require.Contains(t, string(data), `blogbuilder_build_outcomes_total{outcome="success"} 1`)
	require.Contains(t, string(data), `blogbuilder_artifacts_written_total{kind="post"} 1`)
}

func TestBuild_CleanFlag(t *testing.T) {
	site := helpers.NewSiteFixture(t).AddPost("hello", "Hello World", "2025-10-01", "x")
	_, err := run(t, "--root", site.Root)
	require.NoError(t, err)

	out, err := run(t, "build", "--clean", "--root", site.Root)
	require.NoError(t, err)
	require.Contains(t, out, "Cleaned generated files.")
	site.Files().
		AssertFileCount("posts", 0).
		AssertFileNotExists("index.html")
}

func TestClean_WithoutConfiguration(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, "clean", "--root", root)
	require.NoError(t, err)
	require.Equal(t, "Cleaned generated files.\n", out)
}

func TestInit_ScaffoldsBuildableSite(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, "init", "--root", root)
	require.NoError(t, err)
	require.Contains(t, out, "initialized successfully")

	_, err = run(t, "--root", root)
	require.NoError(t, err)
	helpers.NewFileAssertions(t, root).
		AssertFileExists("posts/hello-world.html").
		AssertFileContains("index.html", "posts/hello-world.html").
		AssertFileContains("index.html", "<title>My Retro Blog</title>").
		AssertFileNotContains("index.html", "{{SITE_TITLE}}")
}

func TestInit_RefusesExistingConfiguration(t *testing.T) {
	site := helpers.NewSiteFixture(t)

	out, err := run(t, "init", "--root", site.Root)
	require.ErrorIs(t, err, config.ErrExists)
	require.Contains(t, out, "Initialization failed")
	require.Equal(t, 7, foundationerrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	_, err = run(t, "init", "--root", site.Root, "--force")
	require.NoError(t, err)
}
