package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tie/gimi/game"
	"github.com/tie/gimi/plan"
)

type ModTypeCommand struct {
	*Env
}

func (*ModTypeCommand) Name() string     { return "modtype" }
func (*ModTypeCommand) Synopsis() string { return "check whether a plan installs a loader mod" }
func (*ModTypeCommand) Usage() string {
	return `Usage: gimi modtype <plan.hcl>

	Reads a plan written by "install" and reports whether its copies
	belong to the loader mod type. Exits with status 1 when they do not.
`
}

func (cmd *ModTypeCommand) SetFlags(fs *flag.FlagSet) {
}

func (cmd *ModTypeCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		return subcommands.ExitUsageError
	}
	p, ok := cmd.newPlugin()
	if !ok {
		return subcommands.ExitFailure
	}

	fpath := fs.Arg(0)
	src, err := os.ReadFile(fpath)
	if err != nil {
		logger.Errorf("read %q: %+v", fpath, err)
		return subcommands.ExitFailure
	}

	parser := hclparse.NewParser()
	diagWr, _ := newDiagWr(parser)
	pl, diags := plan.Decode(parser, src, fpath)
	if len(diags) > 0 {
		if err := diagWr.WriteDiagnostics(diags); err != nil {
			logger.Errorf("write diags: %+v", err)
			return subcommands.ExitFailure
		}
	}
	if diags.HasErrors() {
		return subcommands.ExitFailure
	}

	isLoader := p.TestLoaderModType(pl)
	fmt.Printf("%s\t%t\n", game.LoaderModTypeID, isLoader)
	if !isLoader {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
