// Package ini edits the launch setting of a 3DMigoto d3dx.ini file.
//
// The file is treated as a list of lines rather than parsed, so comments
// and layout of sections the plugin does not own survive untouched.
package ini

import (
	"fmt"
	"strings"
)

const (
	loaderSection   = "[loader]"
	launcherSection = "[Launcher]"
	launchPrefix    = "launch = "
)

// LaunchLine formats the setting that makes the loader start the game.
func LaunchLine(exePath string) string {
	return fmt.Sprintf("%s%s", launchPrefix, exePath)
}

// SetLaunchLine adds or replaces the launch line in the [Loader] section.
//
// Without a [Loader] section a [Launcher] header and the launch line are
// prepended. That header is what earlier releases wrote, so it is also
// recognised on later runs, which keeps the function idempotent.
func SetLaunchLine(text, exePath string) string {
	launch := LaunchLine(exePath)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}

	idx := findHeader(lines, loaderSection)
	if idx < 0 {
		idx = findHeader(lines, launcherSection)
	}
	if idx < 0 {
		out := make([]string, 0, len(lines)+2)
		out = append(out, launcherSection, launch)
		out = append(out, lines...)
		return strings.Join(out, "\n")
	}

	if n := findLaunch(lines, idx); n >= 0 {
		lines[n] = launch
		return strings.Join(lines, "\n")
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:idx+1]...)
	out = append(out, launch)
	out = append(out, lines[idx+1:]...)
	return strings.Join(out, "\n")
}

func findHeader(lines []string, header string) int {
	h := strings.ToLower(header)
	for i, l := range lines {
		if strings.HasPrefix(strings.ToLower(l), h) {
			return i
		}
	}
	return -1
}

// findLaunch scans forward from the section header.
func findLaunch(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.HasPrefix(strings.ToLower(lines[i]), launchPrefix) {
			return i
		}
	}
	return -1
}
