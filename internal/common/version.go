package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Version identifies a corpusfield build. Overridden at link time via
// -ldflags "-X github.com/ternarybob/corpusfield/internal/common.Version=...".
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the bare semantic version.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version annotated with build time and commit,
// as printed by "corpusfield version". The startup banner shows only
// GetVersion.
func GetFullVersion() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", Version, BuildTime, GitCommit)
}

// LoadVersionFromFile overrides Version from a ".version" file dropped next
// to the executable, for deployments that stamp the binary post-build.
func LoadVersionFromFile() string {
	exePath, err := os.Executable()
	if err != nil {
		return Version
	}

	exeDir := filepath.Dir(exePath)
	versionFile := filepath.Join(exeDir, ".version")

	data, err := os.ReadFile(versionFile)
	if err != nil {
		return Version
	}

	version := strings.TrimSpace(string(data))
	if version != "" {
		Version = version
	}

	return Version
}
