package game

import (
	"context"

	"github.com/tie/gimi/models"
)

// Host is the mod manager the plugin registers its callbacks with.
type Host interface {
	RegisterGame(Definition)
	RegisterInstaller(Installer)
	RegisterModType(ModType)
}

// Definition describes the game to the host.
type Definition struct {
	ID            string
	Name          string
	MergeMods     bool
	Executable    string
	RequiredFiles []string
	Logo          string
	Tools         []Tool

	// Details are free-form hints, e.g. customOpenModsPath.
	Details map[string]string

	QueryPath        func(ctx context.Context) (string, bool)
	QueryModPath     func(gamePath string) string
	Setup            func(ctx context.Context, d Discovery) error
	RequiresLauncher func(gamePath, store string) (Launcher, bool)
	GetGameVersion   func(gamePath string) (string, error)
}

// Tool is an additional executable the host can start for the game.
type Tool struct {
	ID             string
	Name           string
	ShortName      string
	Executable     string
	RequiredFiles  []string
	Relative       bool
	Exclusive      bool
	DefaultPrimary bool

	QueryPath func(ctx context.Context) (string, bool)
}

type (
	TestFunc    func(files []string, gameID string) models.TestResult
	InstallFunc func(ctx context.Context, files []string, destinationRoot string) (models.Plan, error)
)

// Installer pairs an archive test with the plan builder it guards.
// Lower priorities are tried first.
type Installer struct {
	ID       string
	Priority int
	Test     TestFunc
	Install  InstallFunc
}

// ModType routes installed mods to a different folder.
type ModType struct {
	ID          string
	Name        string
	Priority    int
	IsSupported func(gameID string) bool
	GetPath     func() string
	Test        func(p models.Plan) bool
}

// Discovery is where the host found the game and through which store.
type Discovery struct {
	Path  string
	Store string
}

// Launcher tells the host to start the game through a store client.
type Launcher struct {
	Launcher string
	AddInfo  string
}

// Notification is shown by the host. Sending never blocks or fails.
type Notification struct {
	ID      string
	Type    string
	Title   string
	Message string
	Actions []Action
}

type Action struct {
	Title string
	URL   string
}

type Notifier interface {
	Notify(n Notification)
}
