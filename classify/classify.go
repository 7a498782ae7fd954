// Package classify decides what kind of mod archive a file list holds.
package classify

import (
	"strings"

	"github.com/tie/gimi/config"
	"github.com/tie/gimi/models"
)

// Classifier applies two predicates in fixed priority: an archive carrying
// the loader executable is a loader package even if it also ships ini files.
type Classifier struct {
	loaderExe  string
	modFileExt string
}

func New(g config.Game) *Classifier {
	return &Classifier{
		loaderExe:  strings.ToLower(g.LoaderExe),
		modFileExt: strings.ToLower(g.ModFileExt),
	}
}

// IsLoader reports whether p names the loader executable.
func (c *Classifier) IsLoader(p string) bool {
	if models.IsDirMarker(p) {
		return false
	}
	return strings.ToLower(models.Base(p)) == c.loaderExe
}

// IsModFile reports whether p has the mod config extension.
func (c *Classifier) IsModFile(p string) bool {
	if models.IsDirMarker(p) {
		return false
	}
	return models.Ext(p) == c.modFileExt
}

// FindLoader returns the first loader executable entry.
func (c *Classifier) FindLoader(files []string) (string, bool) {
	return find(files, c.IsLoader)
}

// FindModFile returns the first entry with the mod config extension.
func (c *Classifier) FindModFile(files []string) (string, bool) {
	return find(files, c.IsModFile)
}

func (c *Classifier) Archive(files []string) models.Classification {
	if _, ok := c.FindLoader(files); ok {
		return models.LoaderPackage
	}
	if _, ok := c.FindModFile(files); ok {
		return models.ContentMod
	}
	return models.Unsupported
}

// LoaderModType reports whether an applied plan should be routed to the
// loader mod type. Only copy destinations are inspected.
func (c *Classifier) LoaderModType(plan models.Plan) bool {
	copies := plan.Copies()
	for _, i := range copies {
		if c.IsLoader(i.Destination) {
			return true
		}
	}
	for _, i := range copies {
		if c.IsModFile(i.Destination) {
			return true
		}
	}
	return false
}

func find(files []string, pred func(string) bool) (string, bool) {
	for _, f := range files {
		if pred(f) {
			return f, true
		}
	}
	return "", false
}
