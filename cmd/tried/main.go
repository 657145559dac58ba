package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/khalid-nowaf/tried/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("tried"),
		kong.Description("Drive a trie container from operation and dictionary files."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(cli.NewContext(os.Stdout, cli.CLI.Verbose)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
