package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/tie/gimi/game"
)

type SetupCommand struct {
	*Env
}

func (*SetupCommand) Name() string     { return "setup" }
func (*SetupCommand) Synopsis() string { return "prepare the mods directory" }
func (*SetupCommand) Usage() string {
	return `Usage: gimi setup

	Creates the loader's Mods directory and warns when the loader
	itself is not installed yet.
`
}

func (cmd *SetupCommand) SetFlags(fs *flag.FlagSet) {
}

func (cmd *SetupCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p, ok := cmd.newPlugin()
	if !ok {
		return subcommands.ExitFailure
	}
	dir, _ := p.LocateGame(ctx)
	if err := p.Setup(ctx, game.Discovery{Path: dir}); err != nil {
		logger.Errorf("setup %q: %+v", p.Config().ModsPath(), err)
		return subcommands.ExitFailure
	}
	logger.Info("mods directory ready", "path", p.Config().ModsPath())
	return subcommands.ExitSuccess
}
