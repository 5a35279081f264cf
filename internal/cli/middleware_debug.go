package cli

import (
	"fmt"
	"os"

	"github.com/keshon/jjhunk/internal/config"
)

// WithArgsDebug traces the raw arguments on stderr in dev builds.
func WithArgsDebug() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *Context) error {
				if config.IsDev {
					fmt.Fprintf(os.Stderr, "%s args: %+v\n", cmd.Name(), ctx.Args)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
