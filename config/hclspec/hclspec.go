package hclspec

// Config is the on-disk override file. Every attribute is optional;
// omitted attributes keep their built-in defaults.
type Config struct {
	Game    *Game    `hcl:"game,block"`
	Loader  *Loader  `hcl:"loader,block"`
	Locator *Locator `hcl:"locator,block"`
}

type Game struct {
	ID         string `hcl:"id,label"`
	Name       string `hcl:"name,optional"`
	Executable string `hcl:"executable,optional"`
	Logo       string `hcl:"logo,optional"`
}

type Loader struct {
	Executable string `hcl:"executable,optional"`
	ModFileExt string `hcl:"mod_file_ext,optional"`
	Dir        string `hcl:"dir,optional"`
	ModsDir    string `hcl:"mods_dir,optional"`
	INI        string `hcl:"ini,optional"`
	ModsRoot   string `hcl:"mods_root,optional"`
	URL        string `hcl:"url,optional"`
}

type Locator struct {
	EpicAppID      string `hcl:"epic_app_id,optional"`
	RegistryHive   string `hcl:"registry_hive,optional"`
	RegistryKey    string `hcl:"registry_key,optional"`
	RegistryValue  string `hcl:"registry_value,optional"`
	LauncherConfig string `hcl:"launcher_config,optional"`
	InstallPathKey string `hcl:"install_path_key,optional"`
	GameConfig     string `hcl:"game_config,optional"`
	VersionKey     string `hcl:"version_key,optional"`
}
