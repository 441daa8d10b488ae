package main

import (
	"os"
	"runtime/debug"

	"github.com/gigurra/dirsize/cmd/dirsize"
)

func main() {
	cmd := dirsize.Cmd()
	cmd.Version = appVersion()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
