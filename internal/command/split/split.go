package split

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/keshon/jjhunk/internal/cli"
	"github.com/keshon/jjhunk/internal/config"
	"github.com/keshon/jjhunk/internal/jj"
	"github.com/keshon/jjhunk/internal/spec"
)

type Command struct{}

func (c *Command) Name() string  { return "split" }
func (c *Command) Brief() string { return "Split selected hunks into a new commit" }
func (c *Command) Usage() string { return "split [-r REV] [-f FILE] [<spec>] <message>" }
func (c *Command) Help() string {
	return `Run jj split with this tool as the diff editor. The hunks the spec
selects go into the first commit, carrying <message>; everything else
stays in the second. The spec comes inline as the first positional
argument ('-' reads stdin) or from --spec-file.`
}
func (c *Command) Aliases() []string { return nil }

func (c *Command) Run(ctx *cli.Context) error {
	flags := pflag.NewFlagSet("split", pflag.ContinueOnError)
	specFile := flags.StringP("spec-file", "f", "", "read spec from a file (JSON or YAML)")
	rev := flags.StringP("rev", "r", "", "revision to split (defaults to @)")
	if err := flags.Parse(ctx.Args); err != nil {
		return err
	}

	inline, message, err := splitArgs(flags.Args(), *specFile)
	if err != nil {
		return err
	}
	content, err := spec.ReadInput(inline, *specFile)
	if err != nil {
		return err
	}
	if _, err := spec.Parse(content); err != nil {
		return err
	}

	args := []string{"split", "--tool=" + config.ToolName, "-m", message}
	if *rev != "" {
		args = append(args, "-r", *rev)
	}
	return jj.RunWithSelection(args, content)
}

func splitArgs(positional []string, specFile string) (inline, message string, err error) {
	if specFile != "" {
		switch len(positional) {
		case 1:
			return "", positional[0], nil
		case 0:
			return "", "", fmt.Errorf("split requires a commit message")
		default:
			return "", "", fmt.Errorf("split: omit the inline spec when using --spec-file")
		}
	}
	switch len(positional) {
	case 2:
		return positional[0], positional[1], nil
	case 1:
		return "", "", fmt.Errorf("split requires both a spec and a commit message (or --spec-file and a message)")
	case 0:
		return "", "", fmt.Errorf("split requires a spec and a commit message")
	default:
		return "", "", fmt.Errorf("split: too many arguments")
	}
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithArgsDebug()))
}
