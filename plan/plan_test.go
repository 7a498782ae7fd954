package plan

import (
	"strings"
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tie/gimi/models"
)

func TestEncodeDecode(t *testing.T) {
	p := models.Plan{
		models.Copy(`3dmigoto\3DMigoto Loader.exe`, "3dmigoto/3DMigoto Loader.exe"),
		models.Copy("3dmigoto/d3d11.dll", "3dmigoto/d3d11.dll"),
		models.GenerateFile("3dmigoto/d3dx.ini", []byte("[Launcher]\nlaunch = C:\\Games\\GenshinImpact.exe\n; ${not a template}\n")),
	}

	src, err := Encode(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(src), "copy {"))
	assert.Contains(t, string(src), `"3dmigoto\\3DMigoto Loader.exe"`)

	got, diags := Decode(hclparse.NewParser(), src, "plan.hcl")
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, p, got)
}

func TestEncodeUnknownInstruction(t *testing.T) {
	_, err := Encode(models.Plan{{Type: "delete", Destination: "x"}})
	assert.ErrorIs(t, err, models.ErrUnknownInstruction)
}

func TestDecodeInvalid(t *testing.T) {
	src := []byte(`copy {
  source = "a"
}
`)
	_, diags := Decode(hclparse.NewParser(), src, "plan.hcl")
	assert.True(t, diags.HasErrors())
}

func TestDecodeEmpty(t *testing.T) {
	got, diags := Decode(hclparse.NewParser(), nil, "plan.hcl")
	require.False(t, diags.HasErrors())
	assert.Empty(t, got)
}
