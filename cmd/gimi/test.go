package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type TestCommand struct {
	*Env

	GameID string
}

func (*TestCommand) Name() string     { return "test" }
func (*TestCommand) Synopsis() string { return "classify an extracted mod archive" }
func (*TestCommand) Usage() string {
	return `Usage: gimi test [-game id] <staged dir>

	Lists the extracted archive and reports whether the loader
	installer or the content mod installer accepts it.

Flags:
`
}

func (cmd *TestCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.GameID, "game", "", "game id the archive is installed for (default from config)")
}

func (cmd *TestCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		return subcommands.ExitUsageError
	}
	p, ok := cmd.newPlugin()
	if !ok {
		return subcommands.ExitFailure
	}
	gameID := cmd.GameID
	if gameID == "" {
		gameID = p.Config().ID
	}

	dir := fs.Arg(0)
	files, err := listFiles(dir)
	if err != nil {
		logger.Errorf("list %q: %+v", dir, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("classification\t%s\n", p.Classify(files))
	fmt.Printf("loader\t%t\n", p.TestLoaderPackage(files, gameID).Supported)
	fmt.Printf("content\t%t\n", p.TestContentMod(files, gameID).Supported)
	return subcommands.ExitSuccess
}
