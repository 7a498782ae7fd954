package config

import (
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverrides(t *testing.T) {
	src := []byte(`
game "genshinimpact" {
  name = "Genshin"
}

loader {
  mods_root = "/opt/gimi"
  mod_file_ext = ".INI"
}

locator {
  epic_app_id = "abc"
}
`)
	g, diags := Parse(hclparse.NewParser(), src, "gimi.hcl")
	require.False(t, diags.HasErrors(), diags.Error())

	def := Default()
	assert.Equal(t, "Genshin", g.Name)
	assert.Equal(t, "/opt/gimi", g.ModsRoot)
	assert.Equal(t, ".INI", g.ModFileExt)
	assert.Equal(t, "abc", g.EpicAppID)
	assert.Equal(t, def.LoaderExe, g.LoaderExe)
	assert.Equal(t, def.RegistryKey, g.RegistryKey)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	g, diags := Parse(hclparse.NewParser(), nil, "empty.hcl")
	require.False(t, diags.HasErrors())
	assert.Equal(t, Default(), g)
}

func TestParseUnknownAttribute(t *testing.T) {
	src := []byte(`loader {
  bogus = 1
}
`)
	_, diags := Parse(hclparse.NewParser(), src, "bad.hcl")
	assert.True(t, diags.HasErrors())
}
