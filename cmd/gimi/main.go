package main

import (
	"context"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
)

const programName = "gimi"

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: programName,
})

func main() {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.Bool("h", false, "alias for help")
	fs.Bool("help", false, "print usage")

	env := &Env{}
	fs.StringVar(&env.ConfigPath, "config", "", "game definition override file")
	fs.BoolVar(&env.Verbose, "v", false, "verbose logging")

	cdr := subcommands.NewCommander(fs, programName)
	cdr.Register(&LocateCommand{Env: env}, "")
	cdr.Register(&VersionCommand{Env: env}, "")
	cdr.Register(&TestCommand{Env: env}, "")
	cdr.Register(&InstallCommand{Env: env}, "")
	cdr.Register(&PatchCommand{Env: env}, "")
	cdr.Register(&ModTypeCommand{Env: env}, "")
	cdr.Register(&SetupCommand{Env: env}, "")
	cdr.Register(cdr.HelpCommand(), "help")
	cdr.Register(cdr.FlagsCommand(), "help")
	cdr.Register(cdr.CommandsCommand(), "help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		logger.Fatal(err)
	}
	if env.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	ctx := context.Background()
	switch cdr.Execute(ctx) {
	case subcommands.ExitFailure:
		os.Exit(1)
	case subcommands.ExitUsageError:
		os.Exit(2)
	}
}
