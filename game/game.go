// Package game wires the locator, classifier and builders into the
// callbacks a mod manager host expects.
package game

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"github.com/tie/gimi/builder"
	"github.com/tie/gimi/classify"
	"github.com/tie/gimi/config"
	"github.com/tie/gimi/locator"
	"github.com/tie/gimi/models"
)

const (
	ContentInstallerID = "genshinimpact-mod"
	LoaderInstallerID  = "gimi-installer"
	LoaderModTypeID    = "gimi-modtype"

	StoreEpic = "epic"

	launcherExe = "launcher.exe"
)

type Plugin struct {
	game     config.Game
	locator  *locator.Locator
	classify *classify.Classifier
	loader   *builder.LoaderBuilder
	content  *builder.ContentBuilder
	files    billy.Filesystem
	notifier Notifier
	log      *log.Logger
}

// New builds the plugin. files is used for setup checks on the local disk,
// staging opens the host's extraction directory.
func New(g config.Game, loc *locator.Locator, files billy.Filesystem, staging builder.StagingFunc, n Notifier, logger *log.Logger) *Plugin {
	c := classify.New(g)
	return &Plugin{
		game:     g,
		locator:  loc,
		classify: c,
		loader:   builder.NewLoaderBuilder(g, c, loc, staging, logger),
		content:  builder.NewContentBuilder(g, c),
		files:    files,
		notifier: n,
		log:      logger.WithPrefix("game"),
	}
}

func (p *Plugin) Config() config.Game {
	return p.game
}

func (p *Plugin) LocateGame(ctx context.Context) (string, bool) {
	return p.locator.LocateGame(ctx)
}

func (p *Plugin) LocateLauncher(ctx context.Context) (string, bool) {
	return p.locator.LocateLauncher(ctx)
}

func (p *Plugin) GameExecutable(ctx context.Context) (string, bool) {
	return p.locator.GameExecutable(ctx)
}

func (p *Plugin) GameVersion(gamePath string) (string, error) {
	return p.locator.GameVersion(gamePath)
}

func (p *Plugin) Classify(files []string) models.Classification {
	return p.classify.Archive(files)
}

func (p *Plugin) TestLoaderPackage(files []string, gameID string) models.TestResult {
	supported := gameID == p.game.ID && p.classify.Archive(files) == models.LoaderPackage
	return models.TestResult{
		Supported:     supported,
		RequiredFiles: []string{},
	}
}

func (p *Plugin) InstallLoaderPackage(ctx context.Context, files []string, destinationRoot string) (models.Plan, error) {
	return p.loader.Build(ctx, files, destinationRoot)
}

func (p *Plugin) TestContentMod(files []string, gameID string) models.TestResult {
	supported := gameID == p.game.ID && p.classify.Archive(files) == models.ContentMod
	return models.TestResult{
		Supported:     supported,
		RequiredFiles: []string{},
	}
}

func (p *Plugin) InstallContentMod(ctx context.Context, files []string, destinationRoot string) (models.Plan, error) {
	return p.content.Build(ctx, files, destinationRoot)
}

func (p *Plugin) TestLoaderModType(plan models.Plan) bool {
	return p.classify.LoaderModType(plan)
}

// Builder returns the plan builder for a classification.
func (p *Plugin) Builder(c models.Classification) (builder.Builder, bool) {
	switch c {
	case models.LoaderPackage:
		return p.loader, true
	case models.ContentMod:
		return p.content, true
	}
	return nil, false
}

// RequiresLauncher makes the host start Epic copies through the store.
func (p *Plugin) RequiresLauncher(gamePath, store string) (Launcher, bool) {
	if store != StoreEpic {
		return Launcher{}, false
	}
	return Launcher{Launcher: StoreEpic, AddInfo: p.game.EpicAppID}, true
}

// Setup prepares the mods directory and warns when the loader is missing.
func (p *Plugin) Setup(ctx context.Context, d Discovery) error {
	modsPath := p.game.ModsPath()
	if err := p.files.MkdirAll(modsPath, 0755); err != nil {
		return err
	}
	loaderPath := p.game.LoaderPath()
	_, err := p.files.Stat(loaderPath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		p.log.Warn("stat loader", "path", loaderPath, "err", err)
	}
	if p.notifier != nil {
		p.notifier.Notify(Notification{
			ID:      "gimi-missing",
			Type:    "warning",
			Title:   "GIMI not installed",
			Message: "GIMI is required to mod " + p.game.Name + ".",
			Actions: []Action{{Title: "Get GIMI", URL: p.game.LoaderURL}},
		})
	}
	return nil
}

func (p *Plugin) Definition() Definition {
	g := p.game
	return Definition{
		ID:            g.ID,
		Name:          g.Name,
		MergeMods:     true,
		Executable:    g.Executable,
		RequiredFiles: []string{g.Executable},
		Logo:          g.Logo,
		Tools:         p.Tools(),
		Details: map[string]string{
			"customOpenModsPath": g.ModsPath(),
		},
		QueryPath:        p.LocateGame,
		QueryModPath:     func(string) string { return "." },
		Setup:            p.Setup,
		RequiresLauncher: p.RequiresLauncher,
		GetGameVersion:   p.GameVersion,
	}
}

func (p *Plugin) Tools() []Tool {
	g := p.game
	loaderDir := func(ctx context.Context) (string, bool) {
		return g.ModsRoot, true
	}
	return []Tool{
		{
			ID:         "gimi",
			Name:       "Genshin Impact Model Importer",
			ShortName:  "GIMI",
			Executable: path.Join(g.LoaderDir, g.LoaderExe),
			RequiredFiles: []string{
				path.Join(g.LoaderDir, g.LoaderExe),
				path.Join(g.LoaderDir, "d3d11.dll"),
				path.Join(g.LoaderDir, g.LoaderINI),
			},
			Exclusive:      true,
			DefaultPrimary: true,
			QueryPath:      loaderDir,
		},
		{
			ID:            "genshin-launcher",
			Name:          "Launcher",
			Executable:    launcherExe,
			RequiredFiles: []string{launcherExe},
			QueryPath:     p.LocateLauncher,
		},
	}
}

// Register hands every callback to the host.
func Register(h Host, p *Plugin) {
	h.RegisterGame(p.Definition())

	h.RegisterInstaller(Installer{
		ID:       ContentInstallerID,
		Priority: 25,
		Test:     p.TestContentMod,
		Install:  p.InstallContentMod,
	})
	h.RegisterInstaller(Installer{
		ID:       LoaderInstallerID,
		Priority: 15,
		Test:     p.TestLoaderPackage,
		Install:  p.InstallLoaderPackage,
	})

	gameID := p.game.ID
	modsRoot := p.game.ModsRoot
	h.RegisterModType(ModType{
		ID:          LoaderModTypeID,
		Name:        "GIMI Mod",
		Priority:    25,
		IsSupported: func(id string) bool { return id == gameID },
		GetPath:     func() string { return modsRoot },
		Test:        p.TestLoaderModType,
	})
}
