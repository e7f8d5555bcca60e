package version

import (
	"fmt"
	"runtime"
)

// Build information. Populated at build-time via -ldflags "-X".
var (
	Version   = "undefined"
	GitDate   = "undefined"
	GitCommit = "undefined"
	BuildDate = "undefined"
	GoVersion = runtime.Version()
)

// Info is the build information in a form suitable for json responses.
type Info struct {
	Version   string `json:"version"`
	GitDate   string `json:"gitDate"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

func Get() Info {
	return Info{
		Version:   Version,
		GitDate:   GitDate,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
	}
}

func String() string {
	return fmt.Sprintf("%s (commit %s, %s, built %s)", Version, GitCommit, GoVersion, BuildDate)
}
