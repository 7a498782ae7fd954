// Package apply executes install plans against a filesystem.
package apply

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"github.com/tie/gimi/models"
)

// Executor copies files from the extracted archive in Source into Target
// and writes generated files. Paths in the plan are relative to each root.
type Executor struct {
	Source billy.Filesystem
	Target billy.Filesystem
	Log    *log.Logger
}

func (e *Executor) Apply(p models.Plan) error {
	for _, i := range p {
		if models.Escapes(i.Destination) {
			return fmt.Errorf("%q: %w", i.Destination, models.ErrPathEscapesRoot)
		}
		var err error
		switch i.Type {
		case models.TypeCopy:
			err = e.copyFile(i.Source, i.Destination)
		case models.TypeGenerateFile:
			err = e.addReader(bytes.NewReader(i.Data), i.Destination)
		default:
			err = fmt.Errorf("%q: %w", i.Type, models.ErrUnknownInstruction)
		}
		if err != nil {
			return err
		}
		if e.Log != nil {
			e.Log.Debug("applied", "type", i.Type, "destination", i.Destination)
		}
	}
	return nil
}

func (e *Executor) copyFile(src, dst string) error {
	if models.Escapes(src) {
		return fmt.Errorf("%q: %w", src, models.ErrPathEscapesRoot)
	}
	f, err := e.Source.Open(models.SlashPath(src))
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if err != nil && e.Log != nil {
			e.Log.Errorf("close %q: %+v", src, err)
		}
	}()
	return e.addReader(f, dst)
}

func (e *Executor) addReader(r io.Reader, name string) (err error) {
	name = models.SlashPath(name)
	if dir := path.Dir(name); dir != "." {
		if err := e.Target.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	flags := os.O_WRONLY | os.O_TRUNC | os.O_CREATE
	f, err := e.Target.OpenFile(name, flags, 0644)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(f, r)
	return err
}
