// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnvVars sets every pair for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// TestParseEnv_AllVariables verifies that every documented variable is read.
func TestParseEnv_AllVariables(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":        "env-secret",
		"APP_VERSION":               "2.0.0",
		"SERVER_ADDRESS":            ":8080",
		"SERVER_GRPC_ADDRESS":       ":9090",
		"SERVER_REQUEST_TIMEOUT":    "12s",
		"SERVER_STATIC_DIR":         "./public",
		"STORAGE_DB_DATABASE_URI":   "postgres://localhost/shop",
		"STORAGE_DB_QUERY_TIMEOUT":  "4s",
		"STORAGE_SESSION_DSN":       "memory",
		"ACCESS_ADMIN_PREFIXES":     "/admin/,/ops/",
		"ACCESS_PROTECTED_PREFIXES": "/account/",
		"ACCESS_PUBLIC_PREFIXES":    "/login,/register",
		"ACCESS_LOGIN_PATH":         "/signin",
		"ACCESS_HOME_PATH":          "/home",
		"ACCESS_LANDING_PATH":       "/account/",
		"ADAPTER_ADDRESS":           "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT":   "7s",
		"CONFIG":                    "/etc/shop.json",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 12*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "./public", cfg.Server.StaticDir)
	assert.Equal(t, "postgres://localhost/shop", cfg.Storage.DB.DSN)
	assert.Equal(t, 4*time.Second, cfg.Storage.DB.QueryTimeout)
	assert.Equal(t, "memory", cfg.Storage.Session.DSN)
	assert.Equal(t, []string{"/admin/", "/ops/"}, cfg.Access.AdminPrefixes)
	assert.Equal(t, []string{"/account/"}, cfg.Access.ProtectedPrefixes)
	assert.Equal(t, []string{"/login", "/register"}, cfg.Access.PublicPrefixes)
	assert.Equal(t, "/signin", cfg.Access.LoginPath)
	assert.Equal(t, "/home", cfg.Access.HomePath)
	assert.Equal(t, "/account/", cfg.Access.LandingPath)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/etc/shop.json", cfg.JSONFilePath)
}

// TestParseEnv_InvalidDuration verifies conversion errors are wrapped.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "forever")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

// TestLoadDotEnv_FillsUnsetOnly verifies that .env values do not override
// variables already present in the environment.
func TestLoadDotEnv_FillsUnsetOnly(t *testing.T) {
	const unsetKey = "STOREFRONT_DOTENV_TEST_UNSET"
	const presetKey = "STOREFRONT_DOTENV_TEST_PRESET"

	t.Setenv(presetKey, "from-env")
	t.Cleanup(func() { _ = os.Unsetenv(unsetKey) })

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(unsetKey+"=from-file\n"+presetKey+"=from-file\n"), 0o600))

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "from-file", os.Getenv(unsetKey))
	assert.Equal(t, "from-env", os.Getenv(presetKey))
}

// TestLoadDotEnv_MissingFile verifies that an absent .env is ignored.
func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
