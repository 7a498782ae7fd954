// Package locator finds the game installation through the Epic Games Store
// or the standalone launcher's uninstall registry entry.
package locator

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tie/gimi/config"
)

// Installation is a game registered with a storefront.
type Installation struct {
	AppID string
	Path  string
}

type Store interface {
	// FindByAppID returns ErrNotFound when no installation matches.
	FindByAppID(ctx context.Context, id string) (Installation, error)
}

type Registry interface {
	Value(hive, key, name string) (string, bool)
}

type Locator struct {
	game  config.Game
	store Store
	reg   Registry
	files billy.Filesystem
	log   *log.Logger
}

func New(g config.Game, store Store, reg Registry, files billy.Filesystem, logger *log.Logger) *Locator {
	return &Locator{
		game:  g,
		store: store,
		reg:   reg,
		files: files,
		log:   logger.WithPrefix("locator"),
	}
}

// LocateLauncher returns the launcher directory. Absence is reported
// through ok and never as an error.
func (l *Locator) LocateLauncher(ctx context.Context) (dir string, ok bool) {
	if l.store != nil {
		inst, err := l.store.FindByAppID(ctx, l.game.EpicAppID)
		if err == nil && inst.Path != "" {
			return inst.Path, true
		}
		l.log.Debug("game not found on Epic, checking for its own launcher", "err", err)
	}
	if l.reg == nil {
		return "", false
	}
	v, ok := l.reg.Value(l.game.RegistryHive, l.game.RegistryKey, l.game.RegistryValue)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// LocateGame reads the launcher config to find the actual game folder.
// Every failure is logged and reported as absence so discovery can move on.
func (l *Locator) LocateGame(ctx context.Context) (dir string, ok bool) {
	launcher, ok := l.LocateLauncher(ctx)
	if !ok {
		return "", false
	}

	fpath := filepath.Join(launcher, l.game.LauncherConfig)
	data, err := util.ReadFile(l.files, fpath)
	if err != nil {
		l.log.Warn("error locating game", "path", fpath, "err", err)
		return "", false
	}
	dir, ok = lookupKey(string(data), l.game.InstallPathKey)
	if !ok || dir == "" {
		l.log.Warn("error locating game", "path", fpath, "err", "missing "+l.game.InstallPathKey)
		return "", false
	}
	return dir, true
}

// GameExecutable joins the located game folder with the executable name.
func (l *Locator) GameExecutable(ctx context.Context) (string, bool) {
	dir, ok := l.LocateGame(ctx)
	if !ok {
		return "", false
	}
	return filepath.Join(dir, l.game.Executable), true
}

// lookupKey finds a key=value line, comparing keys case-insensitively.
func lookupKey(data, key string) (string, bool) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		i := strings.IndexByte(line, '=')
		if i < 0 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(line[:i]), key) {
			continue
		}
		return strings.TrimSpace(line[i+1:]), true
	}
	return "", false
}
