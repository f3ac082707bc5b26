// SPDX-License-Identifier: GPL-3.0-or-later

package info

import (
	"github.com/carlmjohnson/versioninfo"
)

// VERSION is injected at release time with
// -ldflags "-X github.com/robgonnella/go-wlanscan/internal/info.VERSION=vX.Y.Z"
var VERSION string

// Build describes the running binary
type Build struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Dirty   bool   `json:"dirty"`
}

// Version returns the injected release version, falling back to the
// version control information stamped by the go toolchain
func Version() string {
	if VERSION != "" {
		return VERSION
	}

	return versioninfo.Short()
}

// GetBuild returns version and vcs information for the running binary
func GetBuild() *Build {
	return &Build{
		Version: Version(),
		Commit:  versioninfo.Revision,
		Dirty:   versioninfo.DirtyBuild,
	}
}
