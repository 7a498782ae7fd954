package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const exe = `C:\Games\Genshin Impact Game\GenshinImpact.exe`

func TestSetLaunchLine(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "no loader section",
			text:     "[Rendering]\nfoo = 1",
			expected: "[Launcher]\nlaunch = " + exe + "\n[Rendering]\nfoo = 1",
		},
		{
			name:     "empty file",
			text:     "",
			expected: "[Launcher]\nlaunch = " + exe + "\n",
		},
		{
			name:     "insert below header",
			text:     "; comment\n[Loader]\ntarget = GenshinImpact.exe\n[Rendering]",
			expected: "; comment\n[Loader]\nlaunch = " + exe + "\ntarget = GenshinImpact.exe\n[Rendering]",
		},
		{
			name:     "replace existing launch line",
			text:     "[Loader]\ntarget = GenshinImpact.exe\nlaunch = D:\\old.exe\nmodule = d3d11.dll",
			expected: "[Loader]\ntarget = GenshinImpact.exe\nlaunch = " + exe + "\nmodule = d3d11.dll",
		},
		{
			name:     "case insensitive header and key",
			text:     "[LOADER]\nLAUNCH = old.exe",
			expected: "[LOADER]\nlaunch = " + exe,
		},
		{
			name:     "trims whitespace and carriage returns",
			text:     "  [Loader]  \r\n\tlaunch = old.exe\r\n",
			expected: "[Loader]\nlaunch = " + exe + "\n",
		},
		{
			name:     "launch line before section is left alone",
			text:     "launch = keep.exe\n[Loader]\ntarget = x",
			expected: "launch = keep.exe\n[Loader]\nlaunch = " + exe + "\ntarget = x",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SetLaunchLine(tc.text, exe))
		})
	}
}

func TestSetLaunchLineIdempotent(t *testing.T) {
	texts := []string{
		"",
		"[Rendering]\nfoo = 1",
		"[Loader]\ntarget = GenshinImpact.exe",
		"[Loader]\nlaunch = other.exe\n[Device]\nlaunch = nope",
		"  [loader]\r\n",
	}
	for _, text := range texts {
		once := SetLaunchLine(text, exe)
		assert.Equal(t, once, SetLaunchLine(once, exe), "text %q", text)
	}
}

func TestSetLaunchLineChangesOnlyOneLine(t *testing.T) {
	text := "[Loader]\ntarget = a\nlaunch = b\nmodule = c\ndelay = 0"
	got := SetLaunchLine(text, exe)
	assert.Equal(t, "[Loader]\ntarget = a\nlaunch = "+exe+"\nmodule = c\ndelay = 0", got)
}
