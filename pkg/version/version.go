// Package version reports how the fsprobe binary was built.
//
// Values injected with -ldflags win. Otherwise the VCS stamp recorded by
// `go build` is used, so a plain `go install` still reports its commit.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the release tag.
	// Set during build with -ldflags "-X github.com/d-kuro/fsprobe/pkg/version.Version=v1.0.0"
	Version = "dev"

	// GitCommit is the commit the binary was built from.
	// Set during build with -ldflags "-X github.com/d-kuro/fsprobe/pkg/version.GitCommit=abcdef"
	GitCommit = "unknown"

	// BuildDate is the build or commit timestamp.
	// Set during build with -ldflags "-X github.com/d-kuro/fsprobe/pkg/version.BuildDate=2024-01-01T00:00:00Z"
	BuildDate = "unknown"
)

// MCPName is the implementation name fsprobe announces to MCP clients.
const MCPName = "fsprobe"

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	Dirty     bool   `json:"dirty,omitempty"`
	Module    string `json:"module,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	MCPName   string `json:"mcp_name"`
}

// GetVersion returns the current version information.
func GetVersion() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		MCPName:   MCPName,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fill(bi)
	}
	return info
}

// fill takes whatever ldflags left unset from the module and VCS stamp.
func (i *Info) fill(bi *debug.BuildInfo) {
	i.Module = bi.Main.Path
	if i.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.GitCommit == "unknown" {
				i.GitCommit = s.Value
			}
		case "vcs.time":
			if i.BuildDate == "unknown" {
				i.BuildDate = s.Value
			}
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
}

// ShortCommit is the first 12 characters of GitCommit.
func (i Info) ShortCommit() string {
	if len(i.GitCommit) > 12 {
		return i.GitCommit[:12]
	}
	return i.GitCommit
}

// String returns a one-line version string.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fsprobe %s (%s", i.Version, i.ShortCommit())
	if i.Dirty {
		sb.WriteString("+dirty")
	}
	fmt.Fprintf(&sb, ", built %s) with %s on %s", i.BuildDate, i.GoVersion, i.Platform)
	return sb.String()
}
