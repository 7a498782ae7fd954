package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/google/subcommands"
	"github.com/pkg/diff"

	"github.com/tie/gimi/ini"
)

type PatchCommand struct {
	*Env

	ExePath     string
	Overwrite   bool
	ContextSize int
}

func (*PatchCommand) Name() string     { return "patch" }
func (*PatchCommand) Synopsis() string { return "set the launch line of a d3dx.ini" }
func (*PatchCommand) Usage() string {
	return `Usage: gimi patch [-exe path] [-c int] [-w] <d3dx.ini>

	Points the loader's launch setting at the game executable. The
	executable is located automatically unless -exe is given. Prints a
	unified diff or, with -w, rewrites the file in place.

Flags:
`
}

func (cmd *PatchCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.ExePath, "exe", "", "game executable path")
	fs.BoolVar(&cmd.Overwrite, "w", false, "write result to (source) file instead of stdout")
	fs.IntVar(&cmd.ContextSize, "c", 3, "output n lines of diff context")
}

func (cmd *PatchCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		return subcommands.ExitUsageError
	}
	fpath := fs.Arg(0)

	exe := cmd.ExePath
	if exe == "" {
		p, ok := cmd.newPlugin()
		if !ok {
			return subcommands.ExitFailure
		}
		exe, ok = p.GameExecutable(ctx)
		if !ok {
			logger.Error("game not found, use -exe")
			return subcommands.ExitFailure
		}
	}

	src, err := os.ReadFile(fpath)
	if err != nil {
		logger.Errorf("read %q: %+v", fpath, err)
		return subcommands.ExitFailure
	}
	outSrc := []byte(ini.SetLaunchLine(string(src), exe))
	if bytes.Equal(src, outSrc) {
		return subcommands.ExitSuccess
	}

	if cmd.Overwrite {
		if err := renameio.WriteFile(fpath, outSrc, 0644); err != nil {
			logger.Errorf("write file %q: %+v", fpath, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	_, color := fdinfo(int(os.Stdout.Fd()))
	name := filepath.ToSlash(fpath)
	aname := fmt.Sprintf("a/%s", name)
	bname := fmt.Sprintf("b/%s", name)
	opts := []diff.WriteOpt{diff.Names(aname, bname)}
	if color {
		opts = append(opts, diff.TerminalColor())
	}
	a, b := splitLines(src), splitLines(outSrc)
	pair := diff.Bytes(a, b)
	edit := diff.Myers(ctx, pair)
	if cmd.ContextSize >= 0 {
		edit = edit.WithContextSize(cmd.ContextSize)
	}
	if _, err := edit.WriteUnified(os.Stdout, pair, opts...); err != nil {
		logger.Errorf("write diff: %+v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func splitLines(b []byte) [][]byte {
	return bytes.Split(b, []byte("\n"))
}
