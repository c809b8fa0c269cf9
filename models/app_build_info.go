// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotAvailable stands in for build metadata the linker did not inject.
const NotAvailable = "N/A"

// AppBuildInfo carries the build metadata injected by linker flags. Both
// binaries print it at startup and the client repeats it from its version
// command next to the server version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns build info with empty values replaced by
// [NotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// IsRelease reports whether a version was injected.
func (a AppBuildInfo) IsRelease() bool {
	return a.buildVersion != "" && a.buildVersion != NotAvailable
}

// Lines renders the build info one field per line, each prefixed by label.
func (a AppBuildInfo) Lines(label string) []string {
	return []string{
		fmt.Sprintf("%s version: %s", label, a.buildVersion),
		fmt.Sprintf("%s date: %s", label, a.buildDate),
		fmt.Sprintf("%s commit: %s", label, a.buildCommit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
