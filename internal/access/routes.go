// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import "strings"

// Class is the access tier of a path.
type Class int

const (
	// ClassUnrestricted paths are shown to everyone.
	ClassUnrestricted Class = iota
	// ClassPublic paths (login, register) are for anonymous visitors only.
	ClassPublic
	// ClassProtected paths need a signed-in user.
	ClassProtected
	// ClassAdmin paths need a signed-in user with the admin role.
	ClassAdmin
)

func (c Class) String() string {
	switch c {
	case ClassPublic:
		return "public"
	case ClassProtected:
		return "protected"
	case ClassAdmin:
		return "admin"
	default:
		return "unrestricted"
	}
}

// Default route table values.
const (
	DefaultLoginPath   = "/login"
	DefaultHomePath    = "/"
	DefaultLandingPath = "/account/settings"
)

// RouteTable partitions the path space by prefix and names the redirect
// targets.
type RouteTable struct {
	Admin     []string
	Protected []string
	Public    []string

	// LoginPath receives anonymous visitors of protected paths.
	LoginPath string
	// HomePath receives visitors of admin paths without the admin role.
	HomePath string
	// LandingPath receives signed-in visitors of public paths.
	LandingPath string
}

// DefaultRouteTable returns the storefront's route table.
func DefaultRouteTable() RouteTable {
	return RouteTable{
		Admin:       []string{"/admin/"},
		Protected:   []string{"/account/", "/dashboard/"},
		Public:      []string{"/login", "/register", "/forgot-password"},
		LoginPath:   DefaultLoginPath,
		HomePath:    DefaultHomePath,
		LandingPath: DefaultLandingPath,
	}
}

// WithDefaults returns a copy of t whose empty redirect targets are filled
// from the defaults. Prefix lists are kept as given.
func (t RouteTable) WithDefaults() RouteTable {
	if t.LoginPath == "" {
		t.LoginPath = DefaultLoginPath
	}
	if t.HomePath == "" {
		t.HomePath = DefaultHomePath
	}
	if t.LandingPath == "" {
		t.LandingPath = DefaultLandingPath
	}
	return t
}

// Classify returns the tier of path. Admin prefixes win over protected
// ones, protected over public.
func (t RouteTable) Classify(path string) Class {
	switch {
	case hasAnyPrefix(path, t.Admin):
		return ClassAdmin
	case hasAnyPrefix(path, t.Protected):
		return ClassProtected
	case hasAnyPrefix(path, t.Public):
		return ClassPublic
	default:
		return ClassUnrestricted
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
