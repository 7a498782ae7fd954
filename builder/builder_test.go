package builder

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tie/gimi/classify"
	"github.com/tie/gimi/config"
	"github.com/tie/gimi/models"
)

const gameExe = `D:\Games\Genshin Impact Game\GenshinImpact.exe`

type fakeFinder struct {
	exe string
}

func (f fakeFinder) GameExecutable(ctx context.Context) (string, bool) {
	return f.exe, f.exe != ""
}

func stagingWith(t *testing.T, files map[string]string) (StagingFunc, *[]string) {
	t.Helper()
	fs := memfs.New()
	for name, data := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(data), 0644))
	}
	var roots []string
	return func(root string) billy.Filesystem {
		roots = append(roots, root)
		return fs
	}, &roots
}

func newLoader(finder GameFinder, staging StagingFunc) *LoaderBuilder {
	g := config.Default()
	return NewLoaderBuilder(g, classify.New(g), finder, staging, log.New(io.Discard))
}

func TestLoaderBuild(t *testing.T) {
	files := []string{
		"3dmigoto/",
		"3dmigoto/3DMigoto Loader.exe",
		"3dmigoto/d3d11.dll",
		"3dmigoto/d3dx.ini",
		"3dmigoto/ShaderFixes/",
		"3dmigoto/ShaderFixes/help.ini",
		"readme.txt",
	}
	staging, roots := stagingWith(t, map[string]string{
		"3dmigoto/d3dx.ini": "[Rendering]\ntexture_hash = 1\n",
	})

	plan, err := newLoader(fakeFinder{gameExe}, staging).Build(context.Background(), files, "/staging/gimi")
	require.NoError(t, err)
	assert.Equal(t, []string{"/staging/gimi"}, *roots)

	expected := models.Plan{
		models.Copy("3dmigoto/3DMigoto Loader.exe", "3dmigoto/3DMigoto Loader.exe"),
		models.Copy("3dmigoto/d3d11.dll", "3dmigoto/d3d11.dll"),
		models.Copy("3dmigoto/ShaderFixes/help.ini", "3dmigoto/ShaderFixes/help.ini"),
		models.GenerateFile("3dmigoto/d3dx.ini", []byte("[Launcher]\nlaunch = "+gameExe+"\n[Rendering]\ntexture_hash = 1\n")),
	}
	assert.Equal(t, expected, plan)

	gen := plan[len(plan)-1]
	assert.True(t, strings.HasPrefix(string(gen.Data), "[Launcher]\nlaunch = "))
}

func TestLoaderBuildWithoutStagedINI(t *testing.T) {
	files := []string{
		"GIMI/3dmigoto/3DMigoto Loader.exe",
		"GIMI/3dmigoto/d3dx.ini",
	}
	staging, _ := stagingWith(t, nil)

	plan, err := newLoader(fakeFinder{gameExe}, staging).Build(context.Background(), files, "/staging")
	require.NoError(t, err)
	assert.Equal(t, models.Plan{
		models.Copy("GIMI/3dmigoto/3DMigoto Loader.exe", "GIMI/3dmigoto/3DMigoto Loader.exe"),
		models.Copy("GIMI/3dmigoto/d3dx.ini", "GIMI/3dmigoto/d3dx.ini"),
	}, plan)
}

func TestLoaderBuildGameNotFound(t *testing.T) {
	files := []string{"3DMigoto Loader.exe", "d3dx.ini"}
	staging, _ := stagingWith(t, map[string]string{"d3dx.ini": "[Loader]"})

	plan, err := newLoader(fakeFinder{}, staging).Build(context.Background(), files, "/staging")
	require.NoError(t, err)
	assert.Len(t, plan, 2)
	for _, i := range plan {
		assert.Equal(t, models.TypeCopy, i.Type)
	}
}

func TestLoaderBuildRootAtArchiveTop(t *testing.T) {
	files := []string{"3DMigoto Loader.exe", "d3dx.ini", `ShaderFixes\a.txt`}
	staging, _ := stagingWith(t, map[string]string{"d3dx.ini": "[Loader]\nlaunch = old.exe"})

	plan, err := newLoader(fakeFinder{gameExe}, staging).Build(context.Background(), files, "/staging")
	require.NoError(t, err)
	assert.Equal(t, models.Plan{
		models.Copy("3DMigoto Loader.exe", "3DMigoto Loader.exe"),
		models.Copy(`ShaderFixes\a.txt`, "ShaderFixes/a.txt"),
		models.GenerateFile("d3dx.ini", []byte("[Loader]\nlaunch = "+gameExe)),
	}, plan)
}

func TestLoaderBuildNoAnchor(t *testing.T) {
	_, err := newLoader(fakeFinder{gameExe}, nil).Build(context.Background(), []string{"Mods/a.ini"}, "/staging")
	assert.ErrorIs(t, err, models.ErrNoAnchor)
}

func TestContentBuild(t *testing.T) {
	g := config.Default()
	b := NewContentBuilder(g, classify.New(g))

	testCases := []struct {
		name     string
		files    []string
		expected models.Plan
	}{
		{
			name:  "nested root",
			files: []string{"Mods/Foo/skin.ini", "Mods/Foo/tex.dds"},
			expected: models.Plan{
				models.Copy("Mods/Foo/skin.ini", "3dmigoto/Mods/Mods/Foo/skin.ini"),
				models.Copy("Mods/Foo/tex.dds", "3dmigoto/Mods/Mods/Foo/tex.dds"),
			},
		},
		{
			name:  "outside root and markers dropped",
			files: []string{"readme.txt", "Foo/", "Foo/Foo.ini", "Foo/Body/", `Foo\Body\body.ib`},
			expected: models.Plan{
				models.Copy("Foo/Foo.ini", "3dmigoto/Mods/Foo/Foo.ini"),
				models.Copy(`Foo\Body\body.ib`, "3dmigoto/Mods/Foo/Body/body.ib"),
			},
		},
		{
			name:  "top level ini",
			files: []string{"mod.ini", "tex.dds"},
			expected: models.Plan{
				models.Copy("mod.ini", "3dmigoto/Mods/mod.ini"),
				models.Copy("tex.dds", "3dmigoto/Mods/tex.dds"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := b.Build(context.Background(), tc.files, "")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, plan)
		})
	}
}

func TestContentBuildErrors(t *testing.T) {
	g := config.Default()
	b := NewContentBuilder(g, classify.New(g))

	_, err := b.Build(context.Background(), []string{"tex.dds"}, "")
	assert.ErrorIs(t, err, models.ErrNoAnchor)

	_, err = b.Build(context.Background(), []string{"../evil.ini"}, "")
	assert.ErrorIs(t, err, models.ErrPathEscapesRoot)
}
