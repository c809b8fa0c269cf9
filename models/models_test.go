// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.True(t, info.IsRelease())
	assert.Equal(t, []string{
		"Build version: 1.4.0",
		"Build date: 2026-10-01",
		"Build commit: abc123",
	}, info.Lines("Build"))

	dev := NewAppBuildInfo("", "", "")
	assert.Equal(t, NotAvailable, dev.BuildVersion())
	assert.Equal(t, NotAvailable, dev.BuildCommit())
	assert.False(t, dev.IsRelease())
}

func TestSessionIsAuthenticated(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"empty", Session{}, false},
		{"token only", Session{Token: "tok"}, false},
		{"user only", Session{User: UserSummary{ID: 7}}, false},
		{"both", Session{Token: "tok", User: UserSummary{ID: 7}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsAuthenticated())
		})
	}
}
