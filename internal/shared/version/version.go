// Package version identifies the running build. The variables are set at link
// time, e.g. -ldflags "-X github.com/ticketdesk/ticketdesk/internal/shared/version.Version=1.4.0".
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// Current returns Version in canonical semver form, or unchanged when it is
// not a release version ("dev").
func Current() string {
	if v := Normalize(Version); semver.IsValid(v) {
		return semver.Canonical(v)
	}
	return Version
}

// String is the long form printed by the version command.
func String() string {
	var b strings.Builder
	b.WriteString(Current())
	if Commit != "" {
		b.WriteString(" (" + Commit + ")")
	}
	if BuildTime != "" {
		b.WriteString(" built " + BuildTime)
	}
	return b.String()
}
