package builder

import (
	"context"
	"fmt"
	"path"

	"github.com/tie/gimi/classify"
	"github.com/tie/gimi/config"
	"github.com/tie/gimi/models"
)

var _ Builder = (*ContentBuilder)(nil)

// ContentBuilder installs mods consumed by an installed loader. Files keep
// their archive layout below the loader's mods directory.
type ContentBuilder struct {
	game     config.Game
	classify *classify.Classifier
}

func NewContentBuilder(g config.Game, c *classify.Classifier) *ContentBuilder {
	return &ContentBuilder{
		game:     g,
		classify: c,
	}
}

// Build ignores destinationRoot; content mods need nothing from staging.
func (b *ContentBuilder) Build(ctx context.Context, files []string, destinationRoot string) (models.Plan, error) {
	anchor, ok := b.classify.FindModFile(files)
	if !ok {
		return nil, fmt.Errorf("*%s: %w", b.game.ModFileExt, models.ErrNoAnchor)
	}
	root := models.Dir(anchor)

	modsDir := path.Join(b.game.LoaderDir, b.game.ModsDir)
	dest := func(rel string) string {
		return path.Join(modsDir, rel)
	}
	copies, err := copyUnder(files, root, nil, dest)
	if err != nil {
		return nil, err
	}
	return models.Plan(copies), nil
}
