package commit

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/keshon/jjhunk/internal/cli"
	"github.com/keshon/jjhunk/internal/config"
	"github.com/keshon/jjhunk/internal/jj"
	"github.com/keshon/jjhunk/internal/spec"
)

type Command struct{}

func (c *Command) Name() string  { return "commit" }
func (c *Command) Brief() string { return "Commit selected hunks from the working copy" }
func (c *Command) Usage() string { return "commit [-f FILE] [<spec>] <message>" }
func (c *Command) Help() string {
	return `Run jj commit -i with this tool as the diff editor. The hunks the
spec selects are committed with <message>; the rest stays in the
working copy. The spec comes inline as the first positional argument
('-' reads stdin) or from --spec-file.`
}
func (c *Command) Aliases() []string { return nil }

func (c *Command) Run(ctx *cli.Context) error {
	flags := pflag.NewFlagSet("commit", pflag.ContinueOnError)
	specFile := flags.StringP("spec-file", "f", "", "read spec from a file (JSON or YAML)")
	if err := flags.Parse(ctx.Args); err != nil {
		return err
	}

	inline, message, err := commitArgs(flags.Args(), *specFile)
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

	args := []string{"commit", "-i", "--tool=" + config.ToolName, "-m", message}
	return jj.RunWithSelection(args, content)
}

func commitArgs(positional []string, specFile string) (inline, message string, err error) {
	if specFile != "" {
		switch len(positional) {
		case 1:
			return "", positional[0], nil
		case 0:
			return "", "", fmt.Errorf("commit requires a commit message")
		default:
			return "", "", fmt.Errorf("commit: omit the inline spec when using --spec-file")
		}
	}
	switch len(positional) {
	case 2:
		return positional[0], positional[1], nil
	case 1:
		return "", "", fmt.Errorf("commit requires both a spec and a commit message (or --spec-file and a message)")
	case 0:
		return "", "", fmt.Errorf("commit requires a spec and a commit message")
	default:
		return "", "", fmt.Errorf("commit: too many arguments")
	}
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithArgsDebug()))
}
