package version

import (
	"runtime/debug"
)

var (
	Version = "v0.1.0"
)

func init() {
	ver := ReadTaiBuildVersion()
	if ver != "" {
		Version = ver
	}
}

func ReadTaiBuildVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		for _, dep := range buildInfo.Deps {
			if dep.Path == "github.com/curtisnewbie/tai" {
				if dep.Version != "" {
					return dep.Version
				}
				break
			}
		}
	}
	return ""
}
