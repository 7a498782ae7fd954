package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/term"

	"github.com/tie/gimi/builder"
	"github.com/tie/gimi/config"
	"github.com/tie/gimi/game"
	"github.com/tie/gimi/locator"
)

// Env carries the global flags to every command.
type Env struct {
	ConfigPath string
	Verbose    bool
}

func newDiagWr(p *hclparse.Parser) (diagWr hcl.DiagnosticWriter, color bool) {
	files := p.Files()
	stderr := os.Stderr
	fd := int(stderr.Fd())
	istty, color := fdinfo(fd)
	if !istty {
		diagWr := hcl.NewDiagnosticTextWriter(stderr, files, 80, color)
		return diagWr, color
	}
	var width uint
	if w, _, err := term.GetSize(fd); err != nil {
		logger.Debugf("get term size: %+v", err)
		width = 80
	} else if w >= 0 {
		width = uint(w)
	} else {
		width = 80
	}
	return hcl.NewDiagnosticTextWriter(stderr, files, width, color), color
}

func fdinfo(fd int) (istty, color bool) {
	istty = term.IsTerminal(fd)
	if istty {
		color = true
	}
	// See https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color = false
	}
	return
}

// loadConfig returns the defaults unless an override file was given.
func (env *Env) loadConfig() (config.Game, bool) {
	if env.ConfigPath == "" {
		return config.Default(), true
	}
	path := env.ConfigPath
	src, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf("read %q: %+v", path, err)
		return config.Game{}, false
	}

	parser := hclparse.NewParser()
	diagWr, _ := newDiagWr(parser)
	g, diags := config.Parse(parser, src, path)
	if len(diags) > 0 {
		if err := diagWr.WriteDiagnostics(diags); err != nil {
			logger.Errorf("write diags: %+v", err)
			return g, false
		}
	}
	return g, !diags.HasErrors()
}

func (env *Env) newPlugin() (*game.Plugin, bool) {
	g, ok := env.loadConfig()
	if !ok {
		return nil, false
	}
	files := osfs.New("")
	store := &locator.EpicStore{
		Files:    files,
		DataPath: locator.DefaultEpicDataPath(),
	}
	loc := locator.New(g, store, locator.WindowsRegistry{}, files, logger)
	return game.New(g, loc, files, builder.OSStaging, logNotifier{}, logger), true
}

type logNotifier struct{}

func (logNotifier) Notify(n game.Notification) {
	kv := []interface{}{"id", n.ID}
	for _, a := range n.Actions {
		kv = append(kv, a.Title, a.URL)
	}
	switch n.Type {
	case "error":
		logger.Error(n.Title+": "+n.Message, kv...)
	case "warning":
		logger.Warn(n.Title+": "+n.Message, kv...)
	default:
		logger.Info(n.Title+": "+n.Message, kv...)
	}
}

// listFiles lists a staged directory the way archive listings look:
// slash separated, directories marked with a trailing slash.
func listFiles(dir string) ([]string, error) {
	fs := osfs.New(dir)
	return walkFiles(fs)
}

func walkFiles(fs billy.Filesystem) ([]string, error) {
	var files []string
	err := util.Walk(fs, "", func(fpath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fpath == "" || fpath == "." {
			return nil
		}
		name := filepath.ToSlash(fpath)
		if fi.IsDir() {
			name += "/"
		}
		files = append(files, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
