package locator

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/util"

	"github.com/tie/gimi/models"
)

// ConfigError is a malformed or unreadable game config.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("game config %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GameVersion reads the version from the config next to the game executable.
// Unlike discovery, failures here are errors: the game is known to exist.
func (l *Locator) GameVersion(gamePath string) (string, error) {
	fpath := filepath.Join(gamePath, l.game.GameConfig)
	data, err := util.ReadFile(l.files, fpath)
	if err != nil {
		return "", &ConfigError{Path: fpath, Err: err}
	}
	v, ok := lookupKey(string(data), l.game.VersionKey)
	if !ok || v == "" {
		err := fmt.Errorf("%s: %w", l.game.VersionKey, models.ErrKeyNotFound)
		return "", &ConfigError{Path: fpath, Err: err}
	}
	return v, nil
}
