// Package version reports build information taken from the Go build system.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is set at link time with -ldflags "-X github.com/tesh254/labnote/internal/version.Version=v1.2.3".
var Version = ""

const devVersion = "v0.0.0-dev"

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit"`
	GitTag     string `json:"git_tag"`
	BuildDate  string `json:"build_date"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	Compiler   string `json:"compiler"`
	IsModified bool   `json:"is_modified"`
	ModulePath string `json:"module_path,omitempty"`
	ModuleSum  string `json:"module_sum,omitempty"`
}

// GetBuildInfo collects what the runtime knows about this build.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   GetVersion(),
		GitCommit: "unknown",
		GitTag:    "unknown",
		BuildDate: "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Compiler:  runtime.Compiler,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.ModulePath = bi.Main.Path
	info.ModuleSum = bi.Main.Sum
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.BuildDate = s.Value
		case "vcs.modified":
			info.IsModified = s.Value == "true"
		}
	}
	if strings.HasPrefix(info.Version, "v") && info.Version != devVersion {
		info.GitTag = info.Version
	}
	return info
}

// GetVersion returns the link-time version, the module version, or a
// development placeholder.
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return devVersion
}

// IsDevelopment reports whether this is not a tagged build.
func IsDevelopment() bool {
	v := GetVersion()
	return v == devVersion || strings.Contains(v, "-0.") || strings.HasSuffix(v, "+dirty")
}

// IsRelease is the opposite of IsDevelopment.
func IsRelease() bool {
	return !IsDevelopment()
}

func GetShortVersion() string {
	return GetVersion()
}

func GetVersionWithCommit() string {
	info := GetBuildInfo()
	commit := info.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", info.Version, commit)
}

func GetDetailedVersion() string {
	info := GetBuildInfo()
	return fmt.Sprintf("labnote %s\ncommit: %s\nbuilt: %s\ngo: %s %s",
		info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
}

func GetJSONVersion() string {
	b, err := json.MarshalIndent(GetBuildInfo(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
