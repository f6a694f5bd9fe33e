package app

import (
	"runtime/debug"
	"strings"
)

// Release stamps, overridden at link time:
//
//	-ldflags "-X github.com/bookhive/bookhive-backend/internal/app.Version=1.4.0"
//
// Commit and BuildTime fall back to the VCS stamp the toolchain embeds.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is reported in startup logs and on /health,
// e.g. "1.4.0+3f2a9c1" or "dev+3f2a9c1.dirty".
func BuildVersion() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(Version, Commit, BuildTime, info)
}

const shortCommitLen = 7

func formatVersion(version, commit, built string, info *debug.BuildInfo) string {
	var dirty bool
	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	var b strings.Builder
	b.WriteString(version)
	if commit != "" {
		b.WriteByte('+')
		b.WriteString(commit[:min(len(commit), shortCommitLen)])
		if dirty {
			b.WriteString(".dirty")
		}
	}
	if built != "" {
		b.WriteString(" (")
		b.WriteString(built)
		b.WriteByte(')')
	}
	return b.String()
}
