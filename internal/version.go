package internal

import (
	"regexp"
	"runtime/debug"
)

// GitVersion is set at link time with
// -ldflags "-X github.com/iand/fadvise/internal.GitVersion=$(git describe --tags)"
var GitVersion string = "unknown"

var reVersion = regexp.MustCompile(`^(v\d+\.\d+.\d+)(?:-)?(.+)?$`)

// Version formats the build version in semver format, see semver.org. Binaries installed
// with go install fall back to the module version recorded in the build info.
func Version() string {
	return formatVersion(buildVersion())
}

func buildVersion() string {
	if GitVersion != "unknown" {
		return GitVersion
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		return GitVersion
	}
	return bi.Main.Version
}

func formatVersion(v string) string {
	m := reVersion.FindStringSubmatch(v)
	if m == nil || len(m) < 3 {
		return "v0.0.0+" + v
	}

	if m[2] == "" {
		return m[1]
	}
	return m[1] + "+" + m[2]
}
