// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"all interfaces", NetAddress{Port: 8080}, ":8080"},
		{"IPv6", NetAddress{Host: "::1", Port: 8080}, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests parsing of host:port values.
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{"localhost", "localhost:8080", NetAddress{Host: "localhost", Port: 8080}, false},
		{"ip", "127.0.0.1:9090", NetAddress{Host: "127.0.0.1", Port: 9090}, false},
		{"empty host", ":8080", NetAddress{Port: 8080}, false},
		{"ipv6", "[::1]:8080", NetAddress{Host: "::1", Port: 8080}, false},
		{"no port", "localhost", NetAddress{}, true},
		{"port not a number", "localhost:http", NetAddress{}, true},
		{"port zero", "localhost:0", NetAddress{}, true},
		{"port too large", "localhost:70000", NetAddress{}, true},
		{"hostname", "example.com:80", NetAddress{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

// TestParseFlags_AllFlags verifies every flag lands in its config field.
func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "postgres://localhost/shop",
		"-c", "/etc/shop.json",
		"-token-sign-key", "flag-secret",
		"-request-timeout", "20s",
		"-query-timeout", "3s",
		"-static-dir", "/srv/public",
		"-grant-admin", "boss@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://localhost/shop", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/shop.json", cfg.JSONFilePath)
	assert.Equal(t, "flag-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.QueryTimeout)
	assert.Equal(t, "/srv/public", cfg.Server.StaticDir)
	assert.Equal(t, "boss@example.com", cfg.GrantAdminEmail)
}

// TestParseFlags_ConfigAlias verifies -config is an alias of -c.
func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

// TestParseFlags_NoArgs verifies that no flags leave the config empty.
func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_Invalid verifies parse errors are returned.
func TestParseFlags_Invalid(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nonsense"})
	assert.Error(t, err)

	_, err = ParseFlags([]string{"-unknown"})
	assert.Error(t, err)
}
