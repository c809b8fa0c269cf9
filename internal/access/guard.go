// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import "sync"

// Guard remembers the last redirect it asked for. Evaluating the same
// (path, state) pair again reports the redirect without asking the caller
// to navigate a second time. Any non-redirect decision clears the memory.
type Guard struct {
	policy *Policy

	mu       sync.Mutex
	lastPath string
	lastKey  string
	issued   bool
}

// NewGuard returns a Guard over policy.
func NewGuard(policy *Policy) *Guard {
	return &Guard{policy: policy}
}

// Evaluate returns the policy decision for path and state. navigate is true
// only for a redirect that was not already issued for this pair.
func (g *Guard) Evaluate(path string, state SessionState) (decision Decision, navigate bool) {
	decision = g.policy.Decide(path, state)

	g.mu.Lock()
	defer g.mu.Unlock()

	if !decision.IsRedirect() {
		g.issued = false
		g.lastPath, g.lastKey = "", ""
		return decision, false
	}

	key := state.key()
	if g.issued && g.lastPath == path && g.lastKey == key {
		return decision, false
	}

	g.issued = true
	g.lastPath, g.lastKey = path, key
	return decision, true
}

// Reset forgets the last issued redirect.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.issued = false
	g.lastPath, g.lastKey = "", ""
}
