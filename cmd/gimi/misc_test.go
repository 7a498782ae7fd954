package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"3dmigoto/3DMigoto Loader.exe",
		"3dmigoto/d3dx.ini",
		"3dmigoto/Mods/.keep",
	} {
		fpath := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(fpath), 0755))
		require.NoError(t, os.WriteFile(fpath, nil, 0644))
	}

	files, err := listFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"3dmigoto/",
		"3dmigoto/3DMigoto Loader.exe",
		"3dmigoto/Mods/",
		"3dmigoto/Mods/.keep",
		"3dmigoto/d3dx.ini",
	}, files)
}

func TestLoadConfig(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "gimi.hcl")
	require.NoError(t, os.WriteFile(fpath, []byte("loader {\n  mods_root = \"/srv/gimi\"\n}\n"), 0644))

	env := &Env{ConfigPath: fpath}
	g, ok := env.loadConfig()
	require.True(t, ok)
	assert.Equal(t, "/srv/gimi", g.ModsRoot)

	env.ConfigPath = filepath.Join(t.TempDir(), "missing.hcl")
	_, ok = env.loadConfig()
	assert.False(t, ok)
}
