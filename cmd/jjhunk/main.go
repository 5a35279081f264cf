package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/keshon/jjhunk/internal/cli"

	_ "github.com/keshon/jjhunk/internal/command/commit"
	_ "github.com/keshon/jjhunk/internal/command/help"
	_ "github.com/keshon/jjhunk/internal/command/list"
	_ "github.com/keshon/jjhunk/internal/command/preview"
	_ "github.com/keshon/jjhunk/internal/command/selectcmd"
	_ "github.com/keshon/jjhunk/internal/command/split"
	_ "github.com/keshon/jjhunk/internal/command/squash"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(0)
	}

	cmd, ok := cli.GetCommand(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err := cmd.Run(&cli.Context{Args: os.Args[2:]}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: jjhunk <command> [args...]")
	fmt.Println()
	fmt.Println("Available commands:")
	commands := cli.AllCommands()
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	for _, cmd := range commands {
		fmt.Printf("  %-10s %s\n", cmd.Name(), cmd.Brief())
	}
}
