// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// Keys under which every session backend stores its two values.
const (
	SessionTokenKey = "authToken"
	SessionUserKey  = "authUser"
)

// encodeSessionUser serializes the cached user of session. A session that is
// not authenticated is refused so that a half state is never written.
func encodeSessionUser(session models.Session) ([]byte, error) {
	if !session.IsAuthenticated() {
		return nil, ErrIncompleteSession
	}

	user, err := json.Marshal(session.User)
	if err != nil {
		return nil, fmt.Errorf("error encoding session user: %w", err)
	}
	return user, nil
}

// decodeSession rebuilds a session from its stored values. A missing or
// unreadable half yields the zero session.
func decodeSession(token string, user []byte) models.Session {
	if token == "" || len(user) == 0 {
		return models.Session{}
	}

	var summary models.UserSummary
	if err := json.Unmarshal(user, &summary); err != nil {
		return models.Session{}
	}

	session := models.Session{Token: token, User: summary}
	if !session.IsAuthenticated() {
		return models.Session{}
	}
	return session
}
