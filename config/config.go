package config

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tie/gimi/config/hclspec"
)

const modsRootName = "GenshinImpactMods"

// Game holds every fixed name, path and identifier the plugin needs.
// It is passed by value so components cannot mutate shared state.
type Game struct {
	ID         string
	Name       string
	Executable string
	Logo       string

	// EpicAppID is the Epic Games Store catalog id of the game.
	EpicAppID string

	RegistryHive  string
	RegistryKey   string
	RegistryValue string

	// LauncherConfig lives in the launcher directory and points
	// to the real game folder through InstallPathKey.
	LauncherConfig string
	InstallPathKey string

	// GameConfig lives next to the game executable.
	GameConfig string
	VersionKey string

	LoaderExe  string
	ModFileExt string
	LoaderDir  string
	ModsDir    string
	LoaderINI  string

	// ModsRoot is where the loader tool and its mods are installed.
	ModsRoot  string
	LoaderURL string
}

func Default() Game {
	return Game{
		ID:         "genshinimpact",
		Name:       "Genshin Impact",
		Executable: "GenshinImpact.exe",
		Logo:       "gameart.jpg",

		EpicAppID: "41869934302e4b8cafac2d3c0e7c293d",

		RegistryHive:  "HKEY_LOCAL_MACHINE",
		RegistryKey:   `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\Genshin Impact`,
		RegistryValue: "InstallPath",

		LauncherConfig: "config.ini",
		InstallPathKey: "game_install_path",
		GameConfig:     "config.ini",
		VersionKey:     "game_version",

		LoaderExe:  "3DMigoto Loader.exe",
		ModFileExt: ".ini",
		LoaderDir:  "3dmigoto",
		ModsDir:    "Mods",
		LoaderINI:  "d3dx.ini",

		ModsRoot:  defaultModsRoot(),
		LoaderURL: "https://www.nexusmods.com/genshinimpact/mods/89",
	}
}

// defaultModsRoot resolves to %LocalAppData%\GenshinImpactMods on Windows.
func defaultModsRoot() string {
	c, err := os.UserCacheDir()
	if err != nil {
		return modsRootName
	}
	return filepath.Join(c, modsRootName)
}

// LoaderPath is the absolute path of the installed loader executable.
func (g Game) LoaderPath() string {
	return filepath.Join(g.ModsRoot, g.LoaderDir, g.LoaderExe)
}

// ModsPath is the directory the loader reads content mods from.
func (g Game) ModsPath() string {
	return filepath.Join(g.ModsRoot, g.LoaderDir, g.ModsDir)
}

// Parse decodes an override file and applies it over the defaults.
// The parser keeps the file for diagnostics rendering.
func Parse(parser *hclparse.Parser, src []byte, filename string) (Game, hcl.Diagnostics) {
	g := Default()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return g, diags
	}

	var c hclspec.Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &c)
	diags = append(diags, decodeDiags...)
	if diags.HasErrors() {
		return g, diags
	}

	return g.merge(c), diags
}

func (g Game) merge(c hclspec.Config) Game {
	if gg := c.Game; gg != nil {
		set(&g.ID, gg.ID)
		set(&g.Name, gg.Name)
		set(&g.Executable, gg.Executable)
		set(&g.Logo, gg.Logo)
	}
	if l := c.Loader; l != nil {
		set(&g.LoaderExe, l.Executable)
		set(&g.ModFileExt, l.ModFileExt)
		set(&g.LoaderDir, l.Dir)
		set(&g.ModsDir, l.ModsDir)
		set(&g.LoaderINI, l.INI)
		set(&g.ModsRoot, l.ModsRoot)
		set(&g.LoaderURL, l.URL)
	}
	if l := c.Locator; l != nil {
		set(&g.EpicAppID, l.EpicAppID)
		set(&g.RegistryHive, l.RegistryHive)
		set(&g.RegistryKey, l.RegistryKey)
		set(&g.RegistryValue, l.RegistryValue)
		set(&g.LauncherConfig, l.LauncherConfig)
		set(&g.InstallPathKey, l.InstallPathKey)
		set(&g.GameConfig, l.GameConfig)
		set(&g.VersionKey, l.VersionKey)
	}
	return g
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
