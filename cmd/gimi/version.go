package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type VersionCommand struct {
	*Env
}

func (*VersionCommand) Name() string     { return "version" }
func (*VersionCommand) Synopsis() string { return "print installed game version" }
func (*VersionCommand) Usage() string {
	return `Usage: gimi version [game path]

	Prints the game_version from the game's config.ini. Without a path
	the game is located first.
`
}

func (cmd *VersionCommand) SetFlags(fs *flag.FlagSet) {
}

func (cmd *VersionCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p, ok := cmd.newPlugin()
	if !ok {
		return subcommands.ExitFailure
	}

	var dir string
	switch fs.NArg() {
	case 0:
		dir, ok = p.LocateGame(ctx)
		if !ok {
			logger.Error("game not found")
			return subcommands.ExitFailure
		}
	case 1:
		dir = fs.Arg(0)
	default:
		return subcommands.ExitUsageError
	}

	v, err := p.GameVersion(dir)
	if err != nil {
		logger.Errorf("game version: %+v", err)
		return subcommands.ExitFailure
	}
	fmt.Println(v)
	return subcommands.ExitSuccess
}
