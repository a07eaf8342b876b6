package commands

import (
	"fmt"

	"git.home.luguber.info/inful/blogbuilder/internal/build"
)

// CleanCmd implements the 'clean' command.
type CleanCmd struct{}

func (c *CleanCmd) Run(g *Global, root *CLI) error {
	return RunClean(g, root)
}

// RunClean deletes the generated files of the site selected by root. It
// needs no configuration.
func RunClean(g *Global, root *CLI) error {
	if _, err := build.NewBuilder(root.Layout()).Clean(g.context()); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(g.out(), "Cleaned generated files.")
	return nil
}
