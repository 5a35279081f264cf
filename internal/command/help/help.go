package help

import (
	"fmt"
	"sort"
	"strings"

	"github.com/keshon/jjhunk/internal/cli"
)

type Command struct{}

func (c *Command) Name() string  { return "help" }
func (c *Command) Brief() string { return "Show help for commands" }
func (c *Command) Usage() string { return "help [command]" }
func (c *Command) Help() string {
	return "Without arguments, list all commands. With a command name, show its usage and description."
}
func (c *Command) Aliases() []string { return []string{"h"} }

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) > 0 {
		return commandHelp(ctx.Args[0])
	}
	listCommands()
	return nil
}

func commandHelp(name string) error {
	cmd, ok := cli.GetCommand(name)
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fmt.Printf("Usage: jjhunk %s\n\n%s\n", cmd.Usage(), cmd.Help())
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Printf("\nAliases: %s\n", strings.Join(aliases, ", "))
	}
	return nil
}

func listCommands() {
	commands := cli.AllCommands()
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	fmt.Println("Available commands:")
	for _, cmd := range commands {
		fmt.Printf("  %-10s %s\n", cmd.Name(), cmd.Brief())
	}
	fmt.Println("\nUse 'jjhunk help <command>' for details.")
}

func init() {
	cli.RegisterCommand(&Command{})
}
