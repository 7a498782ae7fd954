package main

import (
	"context"
	"flag"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/renameio/v2"
	"github.com/google/subcommands"

	"github.com/tie/gimi/apply"
	"github.com/tie/gimi/models"
	"github.com/tie/gimi/plan"
)

const (
	KindAuto    = "auto"
	KindLoader  = "loader"
	KindContent = "content"
)

type InstallCommand struct {
	*Env

	Kind       string
	OutputPath string
	ApplyPath  string
}

func (*InstallCommand) Name() string     { return "install" }
func (*InstallCommand) Synopsis() string { return "build the install plan for an extracted archive" }
func (*InstallCommand) Usage() string {
	return `Usage: gimi install [-kind auto] [-o plan.hcl] [-apply dir] <staged dir>

	Builds the install plan for an archive extracted to the staged
	directory and writes it as HCL. The plan kinds are:

	    auto
	        Pick the installer from the archive contents.
	        This is the default.
	    loader
	        Install the 3DMigoto loader. A staged d3dx.ini is
	        regenerated with the game's launch path.
	    content
	        Install a mod below the loader's Mods directory.

	With -apply the plan is also executed into the given directory.

Flags:
`
}

func (cmd *InstallCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.Kind, "kind", KindAuto, "installer kind")
	fs.StringVar(&cmd.OutputPath, "o", "-", "plan output path")
	fs.StringVar(&cmd.ApplyPath, "apply", "", "execute the plan into this directory")
}

func (cmd *InstallCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		return subcommands.ExitUsageError
	}
	p, ok := cmd.newPlugin()
	if !ok {
		return subcommands.ExitFailure
	}

	dir := fs.Arg(0)
	files, err := listFiles(dir)
	if err != nil {
		logger.Errorf("list %q: %+v", dir, err)
		return subcommands.ExitFailure
	}

	var kind models.Classification
	switch cmd.Kind {
	case KindAuto:
		kind = p.Classify(files)
	case KindLoader:
		kind = models.LoaderPackage
	case KindContent:
		kind = models.ContentMod
	default:
		logger.Errorf("unknown installer kind: %q", cmd.Kind)
		return subcommands.ExitFailure
	}
	b, ok := p.Builder(kind)
	if !ok {
		logger.Errorf("unsupported archive: %q", dir)
		return subcommands.ExitFailure
	}

	pl, err := b.Build(ctx, files, dir)
	if err != nil {
		logger.Errorf("build %s plan: %+v", kind, err)
		return subcommands.ExitFailure
	}
	logger.Debug("plan built", "kind", kind, "instructions", len(pl), "loaderModType", p.TestLoaderModType(pl))

	outSrc, err := plan.Encode(pl)
	if err != nil {
		logger.Errorf("encode plan: %+v", err)
		return subcommands.ExitFailure
	}
	if fpath := cmd.OutputPath; fpath == "-" {
		if _, err := os.Stdout.Write(outSrc); err != nil {
			logger.Errorf("write plan: %+v", err)
			return subcommands.ExitFailure
		}
	} else if err := renameio.WriteFile(fpath, outSrc, 0644); err != nil {
		logger.Errorf("write file %q: %+v", fpath, err)
		return subcommands.ExitFailure
	}

	if cmd.ApplyPath == "" {
		return subcommands.ExitSuccess
	}
	if err := os.MkdirAll(cmd.ApplyPath, 0755); err != nil {
		logger.Errorf("mkdir %q: %+v", cmd.ApplyPath, err)
		return subcommands.ExitFailure
	}
	e := apply.Executor{
		Source: osfs.New(dir),
		Target: osfs.New(cmd.ApplyPath),
		Log:    logger,
	}
	if err := e.Apply(pl); err != nil {
		logger.Errorf("apply plan: %+v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
