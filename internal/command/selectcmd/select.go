// Package selectcmd implements the diff-editor entry point that jj
// invokes with --tool=jjhunk. It is not meant to be run by hand.
package selectcmd

import (
	"fmt"
	"os"

	"github.com/keshon/jjhunk/internal/apply"
	"github.com/keshon/jjhunk/internal/cli"
	"github.com/keshon/jjhunk/internal/config"
	"github.com/keshon/jjhunk/internal/diff"
	"github.com/keshon/jjhunk/internal/fs"
	"github.com/keshon/jjhunk/internal/spec"
)

type Command struct{}

func (c *Command) Name() string  { return "select" }
func (c *Command) Brief() string { return "Apply a hunk selection to jj's diff-editor trees" }
func (c *Command) Usage() string { return "select <left-dir> <right-dir>" }
func (c *Command) Help() string {
	return `Diff-editor protocol endpoint. jj materializes the before state in
<left-dir> and the after state in <right-dir>; this command rewrites
<right-dir> so it keeps only the hunks named by the selection spec in
$` + config.SpecEnvVar + `. Without that variable every change is kept.

Invoked automatically by split, commit and squash via
--tool=` + config.ToolName + `.`
}
func (c *Command) Aliases() []string { return nil }

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) != 2 {
		return fmt.Errorf("select expects exactly two directories, got %d args", len(ctx.Args))
	}
	left, right := ctx.Args[0], ctx.Args[1]

	specPath := os.Getenv(config.SpecEnvVar)
	if specPath == "" {
		// No selection: leave the right tree as-is, keeping everything.
		return nil
	}

	content, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("reading selection spec: %w", err)
	}
	selection, err := spec.Parse(string(content))
	if err != nil {
		return err
	}

	return apply.Tree(fs.NewOSFS(), left, right, selection, apply.Options{
		Binary: diff.BinaryMode(config.DefaultBinaryMode),
	})
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithArgsDebug()))
}
