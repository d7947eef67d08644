package utils

import "runtime/debug"

const developmentVersion = "dev"

// ApplicationVersion reports the module version recorded in the embedded build
// info, falling back to a development marker for local builds.
func ApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return developmentVersion
	}
	mainVersion := buildInfo.Main.Version
	if mainVersion == "" || mainVersion == "(devel)" {
		return developmentVersion
	}
	return mainVersion
}
