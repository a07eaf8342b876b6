package commands

import (
	"errors"
	"fmt"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration, templates and sample post"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	return RunInit(g, root.Layout(), i.Force)
}

// RunInit scaffolds a new site at layout.
func RunInit(g *Global, layout config.Layout, force bool) error {
	out := g.out()
	_, _ = fmt.Fprintln(out, "Initializing blogbuilder site")
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", layout.ConfigPath())

	written, err := config.Init(layout, force)
	if err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		if errors.Is(err, config.ErrExists) {
			return foundationerrors.ConfigError(err, "site already initialized").
				WithContext("path", layout.ConfigPath()).
				Build()
		}
		return foundationerrors.FileSystemError(err, "failed to scaffold site").Build()
	}

	for _, path := range written {
		_, _ = fmt.Fprintf(out, "  created %s\n", path)
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
