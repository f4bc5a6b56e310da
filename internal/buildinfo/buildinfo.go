package buildinfo

import "runtime/debug"

// Set at build time via -ldflags "-X orrery/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
// Without ldflags it falls back to the VCS revision embedded by the go tool.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return shortRev(Commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shortRev(s.Value)
			}
		}
	}
	return "dev"
}

// Title decorates a window title with the build identifier. Release builds
// keep the plain title.
func Title(base string) string {
	if Version != "" && Version != "dev" {
		return base
	}
	return base + " [" + Short() + "]"
}

func shortRev(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
