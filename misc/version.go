// Package misc keeps build related information in a single place.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// set by the linker: -X storyroom/misc.version=... -X storyroom/misc.gitHash=...
var (
	version = "dev"
	gitHash = ""
	appName = "storyroom"
)

// GetAppName returns name of the program, derived from the executable when
// not set at build time.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit hash program was built from. When not injected
// by the linker VCS information embedded by the toolchain is used.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
