// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the client-side authentication state: the issued token and the
// cached user summary. Both halves are persisted and cleared together.
type Session struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// IsAuthenticated reports whether both the token and the user are present.
// A half-populated session counts as signed out.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User.ID != 0
}
