package app

import (
	"fmt"
	"runtime/debug"
)

// Release stamps, set with
// -ldflags "-X github.com/heartmarshall/typespeed-backend/internal/app.Version=v1.0.0".
// Commit and BuildTime fall back to the VCS data the go tool embeds.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion renders the version line shown by --version, /health and the
// startup log.
func BuildVersion() string {
	commit, built := Commit, BuildTime

	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fillFromBuildInfo(info.Settings, commit, built)
	}

	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func fillFromBuildInfo(settings []debug.BuildSetting, commit, built string) (string, string) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "" && len(s.Value) >= 12 {
				commit = s.Value[:12]
			} else if commit == "" {
				commit = s.Value
			}
		case "vcs.time":
			if built == "" {
				built = s.Value
			}
		}
	}
	return commit, built
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
