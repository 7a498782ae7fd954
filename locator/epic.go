package locator

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
)

var ErrNotFound = errors.New("installation not found")

// EpicStore looks up games in the Epic Games Launcher install list.
type EpicStore struct {
	Files billy.Filesystem

	// DataPath is the LauncherInstalled.dat file.
	DataPath string
}

type launcherInstalled struct {
	InstallationList []epicInstallation `json:"InstallationList"`
}

type epicInstallation struct {
	InstallLocation string `json:"InstallLocation"`
	AppName         string `json:"AppName"`
	NamespaceID     string `json:"NamespaceId"`
	ItemID          string `json:"ItemId"`
	ArtifactID      string `json:"ArtifactId"`
	AppVersion      string `json:"AppVersion"`
}

// DefaultEpicDataPath returns the install list location under %ProgramData%.
func DefaultEpicDataPath() string {
	pd := os.Getenv("ProgramData")
	if pd == "" {
		pd = `C:\ProgramData`
	}
	return filepath.Join(pd, "Epic", "UnrealEngineLauncher", "LauncherInstalled.dat")
}

func (s *EpicStore) FindByAppID(ctx context.Context, id string) (Installation, error) {
	f, err := s.Files.Open(s.DataPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Installation{}, ErrNotFound
		}
		return Installation{}, err
	}
	defer f.Close()

	var li launcherInstalled
	if err := json.NewDecoder(f).Decode(&li); err != nil {
		return Installation{}, err
	}
	for _, inst := range li.InstallationList {
		if !strings.EqualFold(inst.AppName, id) {
			continue
		}
		if inst.InstallLocation == "" {
			continue
		}
		return Installation{
			AppID: inst.AppName,
			Path:  inst.InstallLocation,
		}, nil
	}
	return Installation{}, ErrNotFound
}
