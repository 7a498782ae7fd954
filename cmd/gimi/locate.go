package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type LocateCommand struct {
	*Env
}

func (*LocateCommand) Name() string     { return "locate" }
func (*LocateCommand) Synopsis() string { return "find the game installation" }
func (*LocateCommand) Usage() string {
	return `Usage: gimi locate

	Looks up the launcher through the Epic Games Store and the
	standalone launcher's registry entry, then reads the launcher
	config.ini to print the game directory.
`
}

func (cmd *LocateCommand) SetFlags(fs *flag.FlagSet) {
}

func (cmd *LocateCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p, ok := cmd.newPlugin()
	if !ok {
		return subcommands.ExitFailure
	}

	launcher, ok := p.LocateLauncher(ctx)
	if !ok {
		logger.Error("launcher not found")
		return subcommands.ExitFailure
	}
	fmt.Printf("launcher\t%s\n", launcher)

	dir, ok := p.LocateGame(ctx)
	if !ok {
		logger.Error("game not found")
		return subcommands.ExitFailure
	}
	fmt.Printf("game\t%s\n", dir)
	return subcommands.ExitSuccess
}
