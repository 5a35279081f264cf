package squash

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/keshon/jjhunk/internal/cli"
	"github.com/keshon/jjhunk/internal/config"
	"github.com/keshon/jjhunk/internal/jj"
	"github.com/keshon/jjhunk/internal/spec"
)

type Command struct{}

func (c *Command) Name() string  { return "squash" }
func (c *Command) Brief() string { return "Squash selected hunks into the parent commit" }
func (c *Command) Usage() string { return "squash [-r REV] [-f FILE] [<spec>]" }
func (c *Command) Help() string {
	return `Run jj squash -i with this tool as the diff editor. The hunks the
spec selects move into the parent commit; the rest stays put. The spec
comes inline as the only positional argument ('-' reads stdin) or from
--spec-file.`
}
func (c *Command) Aliases() []string { return nil }

func (c *Command) Run(ctx *cli.Context) error {
	flags := pflag.NewFlagSet("squash", pflag.ContinueOnError)
	specFile := flags.StringP("spec-file", "f", "", "read spec from a file (JSON or YAML)")
	rev := flags.StringP("rev", "r", "", "revision to squash (defaults to @)")
	if err := flags.Parse(ctx.Args); err != nil {
		return err
	}

	positional := flags.Args()
	var inline string
	switch {
	case len(positional) > 1:
		return fmt.Errorf("squash: too many arguments")
	case len(positional) == 1:
		if *specFile != "" {
			return fmt.Errorf("squash: omit the inline spec when using --spec-file")
		}
		inline = positional[0]
	}

	content, err := spec.ReadInput(inline, *specFile)
	if err != nil {
		return err
	}
	if _, err := spec.Parse(content); err != nil {
		return err
	}

	args := []string{"squash", "-i", "--tool=" + config.ToolName}
	if *rev != "" {
		args = append(args, "-r", *rev)
	}
	return jj.RunWithSelection(args, content)
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithArgsDebug()))
}
