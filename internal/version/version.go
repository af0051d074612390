// Package version provides build version information for neuromorph.
// The variables are overridable at compile time via -ldflags.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build information set at compile time via -ldflags.
var (
	// Version is the semantic version of the library and CLI.
	Version = "0.1.0"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"

	// BuildDate is the date the binary was built.
	BuildDate = "unknown"
)

// Info bundles everything the version subcommand reports.
type Info struct {
	Version   string          `json:"version" yaml:"version"`
	GitCommit string          `json:"gitCommit" yaml:"git_commit"`
	BuildDate string          `json:"buildDate" yaml:"build_date"`
	GoVersion string          `json:"goVersion" yaml:"go_version"`
	Platform  string          `json:"platform" yaml:"platform"`
	SemVer    *semver.Version `json:"-" yaml:"-"`
}

// Get returns the full version information for the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if sv, err := semver.NewVersion(Version); err == nil {
		info.SemVer = sv
	}
	return info
}

// GetVersion returns the bare version string.
func GetVersion() string {
	return Version
}

// GetBaseVersion returns major.minor.patch without prerelease or metadata.
func GetBaseVersion() string {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return Version
	}
	return fmt.Sprintf("%d.%d.%d", sv.Major(), sv.Minor(), sv.Patch())
}

// IsValid reports whether Version parses as semantic versioning.
func IsValid() bool {
	_, err := semver.NewVersion(Version)
	return err == nil
}

// String formats the version for display, with the commit when known.
func (i Info) String() string {
	if i.GitCommit != "unknown" && len(i.GitCommit) >= 7 {
		return fmt.Sprintf("neuromorph %s (%s)", i.Version, i.GitCommit[:7])
	}
	return fmt.Sprintf("neuromorph %s", i.Version)
}
