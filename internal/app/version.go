package app

import (
	"runtime/debug"
	"strings"
)

// Build metadata, stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/trendplan-backend/internal/app.Version=1.4.0 \
//	  -X github.com/heartmarshall/trendplan-backend/internal/app.Commit=$(git rev-parse HEAD)"
//
// Unset Commit and BuildTime fall back to the VCS stamp Go embeds in binaries.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion renders "<version>[+<commit>][ <build time>]" for startup logs
// and the /health payload.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime := vcsStamp()
		if commit == "" {
			commit = vcsCommit
		}
		if built == "" {
			built = vcsTime
		}
	}
	return formatVersion(Version, commit, built)
}

func formatVersion(version, commit, built string) string {
	var b strings.Builder
	b.WriteString(version)
	if commit != "" {
		b.WriteString("+")
		b.WriteString(commit[:min(len(commit), 7)])
	}
	if built != "" {
		b.WriteString(" ")
		b.WriteString(built)
	}
	return b.String()
}

func vcsStamp() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}
