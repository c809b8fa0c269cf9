// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// Outcome is what the caller must do with a path.
type Outcome int

const (
	Allow Outcome = iota
	// RenderNothing suspends output until the session is resolved.
	RenderNothing
	RedirectToLogin
	RedirectToHome
	RedirectToLanding
)

func (o Outcome) String() string {
	switch o {
	case RenderNothing:
		return "render-nothing"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToHome:
		return "redirect-to-home"
	case RedirectToLanding:
		return "redirect-to-landing"
	default:
		return "allow"
	}
}

// Decision is the result of a policy evaluation. Location is set for
// redirect outcomes only.
type Decision struct {
	Outcome  Outcome
	Location string
}

// IsRedirect reports whether the decision asks for navigation.
func (d Decision) IsRedirect() bool {
	return d.Outcome == RedirectToLogin || d.Outcome == RedirectToHome || d.Outcome == RedirectToLanding
}

// SessionState is the policy's view of the session: Pending until the
// stored session has been read, then Resolved with or without a user.
type SessionState struct {
	resolved bool
	user     *models.UserSummary
}

// Pending returns the state used before the session is known.
func Pending() SessionState {
	return SessionState{}
}

// Resolved returns a known session state. A nil user means anonymous.
func Resolved(user *models.UserSummary) SessionState {
	return SessionState{resolved: true, user: user}
}

// IsPending reports whether the session is still unknown.
func (s SessionState) IsPending() bool {
	return !s.resolved
}

// User returns the signed-in user or nil.
func (s SessionState) User() *models.UserSummary {
	return s.user
}

// key identifies the state for redirect de-duplication.
func (s SessionState) key() string {
	switch {
	case !s.resolved:
		return "pending"
	case s.user == nil:
		return "anonymous"
	default:
		roles := slices.Clone(s.user.Roles)
		slices.Sort(roles)
		return "user:" + strconv.FormatInt(s.user.ID, 10) + ":" + strings.Join(roles, ",")
	}
}

// Policy maps (path, session state) to a [Decision]. It holds no mutable
// state and is safe for concurrent use.
type Policy struct {
	routes RouteTable
}

// NewPolicy returns a Policy over routes; empty redirect targets get the
// defaults.
func NewPolicy(routes RouteTable) *Policy {
	return &Policy{routes: routes.WithDefaults()}
}

// Routes returns the route table the policy evaluates.
func (p *Policy) Routes() RouteTable {
	return p.routes
}

// Restricts reports whether path falls under an admin, protected or public
// prefix. Decide never reads the session user for any other path.
func (p *Policy) Restricts(path string) bool {
	return p.routes.Classify(path) != ClassUnrestricted
}

// Decide evaluates, in order: pending session, admin path, protected path,
// public path. Any other path is allowed.
func (p *Policy) Decide(path string, state SessionState) Decision {
	if state.IsPending() {
		return Decision{Outcome: RenderNothing}
	}

	user := state.User()

	switch p.routes.Classify(path) {
	case ClassAdmin:
		if user == nil || !user.HasRole(models.RoleAdmin) {
			return Decision{Outcome: RedirectToHome, Location: p.routes.HomePath}
		}
	case ClassProtected:
		if user == nil {
			return Decision{Outcome: RedirectToLogin, Location: p.loginLocation(path)}
		}
	case ClassPublic:
		if user != nil {
			return Decision{Outcome: RedirectToLanding, Location: p.routes.LandingPath}
		}
	}

	return Decision{Outcome: Allow}
}

// loginLocation appends the requested path as the percent-encoded
// "redirect" query parameter of the login page.
func (p *Policy) loginLocation(path string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(path), "+", "%20")

	sep := "?"
	if strings.Contains(p.routes.LoginPath, "?") {
		sep = "&"
	}
	return p.routes.LoginPath + sep + "redirect=" + escaped
}
