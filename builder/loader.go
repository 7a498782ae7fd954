package builder

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tie/gimi/classify"
	"github.com/tie/gimi/config"
	"github.com/tie/gimi/ini"
	"github.com/tie/gimi/models"
)

var _ Builder = (*LoaderBuilder)(nil)

// GameFinder resolves the absolute path of the game executable.
type GameFinder interface {
	GameExecutable(ctx context.Context) (string, bool)
}

// StagingFunc opens the directory an archive is being extracted into.
type StagingFunc func(destinationRoot string) billy.Filesystem

func OSStaging(destinationRoot string) billy.Filesystem {
	return osfs.New(destinationRoot)
}

// LoaderBuilder installs the 3DMigoto loader package. When the staged
// d3dx.ini is readable it is regenerated with a launch line for the game.
type LoaderBuilder struct {
	game     config.Game
	classify *classify.Classifier
	finder   GameFinder
	staging  StagingFunc
	log      *log.Logger
}

func NewLoaderBuilder(g config.Game, c *classify.Classifier, finder GameFinder, staging StagingFunc, logger *log.Logger) *LoaderBuilder {
	if staging == nil {
		staging = OSStaging
	}
	return &LoaderBuilder{
		game:     g,
		classify: c,
		finder:   finder,
		staging:  staging,
		log:      logger.WithPrefix("loader-installer"),
	}
}

func (b *LoaderBuilder) Build(ctx context.Context, files []string, destinationRoot string) (models.Plan, error) {
	anchor, ok := b.classify.FindLoader(files)
	if !ok {
		return nil, fmt.Errorf("%s: %w", b.game.LoaderExe, models.ErrNoAnchor)
	}
	root := models.Dir(anchor)
	iniPath := path.Join(root, b.game.LoaderINI)

	var generated []models.Instruction
	if data, ok := b.patchINI(ctx, destinationRoot, iniPath); ok {
		generated = append(generated, models.GenerateFile(iniPath, data))
	}

	skip := func(f string) bool {
		if len(generated) <= 0 {
			return false
		}
		return strings.EqualFold(models.SlashPath(f), iniPath)
	}
	same := func(rel string) string { return rel }
	copies, err := copyUnder(files, root, skip, same)
	if err != nil {
		return nil, err
	}

	plan := make(models.Plan, 0, len(copies)+len(generated))
	plan = append(plan, copies...)
	plan = append(plan, generated...)
	return plan, nil
}

// patchINI reads the staged loader config and sets its launch line.
// Failures only skip the enrichment.
func (b *LoaderBuilder) patchINI(ctx context.Context, destinationRoot, iniPath string) ([]byte, bool) {
	fs := b.staging(destinationRoot)
	data, err := util.ReadFile(fs, iniPath)
	if err != nil {
		b.log.Warn("error updating d3dx file", "path", iniPath, "err", err)
		return nil, false
	}
	if b.finder == nil {
		b.log.Warn("error updating d3dx file", "path", iniPath, "err", "no game locator")
		return nil, false
	}
	exe, ok := b.finder.GameExecutable(ctx)
	if !ok {
		b.log.Warn("error updating d3dx file", "path", iniPath, "err", "game not found")
		return nil, false
	}
	patched := ini.SetLaunchLine(string(data), exe)
	return []byte(patched), true
}
