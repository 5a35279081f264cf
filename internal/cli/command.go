package cli

// Command represents a cli subcommand.
type Command interface {
	Name() string
	Brief() string
	Usage() string
	Help() string
	Aliases() []string
	Run(ctx *Context) error
}

// Context carries the arguments after the subcommand name.
type Context struct {
	Args []string
}
