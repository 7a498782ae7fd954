// Package builder turns a classified archive listing into an install plan.
package builder

import (
	"context"
	"fmt"

	"github.com/tie/gimi/models"
)

// Builder produces the plan for one kind of archive. destinationRoot is the
// staging directory the host extracted the archive into.
type Builder interface {
	Build(ctx context.Context, files []string, destinationRoot string) (models.Plan, error)
}

// copyUnder emits a copy for every file below root. Directory markers and
// entries rejected by skip are left out.
func copyUnder(files []string, root string, skip func(string) bool, dest func(string) string) ([]models.Instruction, error) {
	var out []models.Instruction
	for _, f := range files {
		if models.IsDirMarker(f) {
			continue
		}
		if !models.Under(f, root) {
			continue
		}
		if skip != nil && skip(f) {
			continue
		}
		rel := models.SlashPath(f)
		if models.Escapes(rel) {
			return nil, fmt.Errorf("%q: %w", f, models.ErrPathEscapesRoot)
		}
		out = append(out, models.Copy(f, dest(rel)))
	}
	return out, nil
}
