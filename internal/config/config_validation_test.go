// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "a-real-secret"},
		Server:  Server{HTTPAddress: ":8080"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/shop"}},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr []error
	}{
		{"valid", func(c *StructuredConfig) {}, nil},
		{"grpc only", func(c *StructuredConfig) { c.Server.HTTPAddress = ""; c.Server.GRPCAddress = ":9090" }, nil},
		{"no address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, []error{ErrInvalidServerConfigs}},
		{"no dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, []error{ErrInvalidStorageConfigs}},
		{"no secret", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, []error{ErrInvalidAppConfigs}},
		{"blank secret", func(c *StructuredConfig) { c.App.TokenSignKey = "   " }, []error{ErrInvalidAppConfigs}},
		{"placeholder secret", func(c *StructuredConfig) { c.App.TokenSignKey = legacyTokenSignKey }, []error{ErrInvalidAppConfigs}},
		{
			"everything missing",
			func(c *StructuredConfig) { *c = StructuredConfig{} },
			[]error{ErrInvalidServerConfigs, ErrInvalidStorageConfigs, ErrInvalidAppConfigs},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
			Storage: ClientStorage{Session: Session{DSN: "sqlite://session.db"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"bolt", func(c *ClientConfig) { c.Storage.Session.DSN = "bolt:///tmp/s.db" }, nil},
		{"memory", func(c *ClientConfig) { c.Storage.Session.DSN = "memory" }, nil},
		{"https", func(c *ClientConfig) { c.Adapter.HTTPAddress = "https://shop.example.com" }, nil},
		{"no scheme", func(c *ClientConfig) { c.Adapter.HTTPAddress = "localhost:8080" }, ErrInvalidAdapterConfigs},
		{"no timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"empty dsn", func(c *ClientConfig) { c.Storage.Session.DSN = "" }, ErrInvalidStorageConfigs},
		{"dsn without path", func(c *ClientConfig) { c.Storage.Session.DSN = "sqlite://" }, ErrInvalidStorageConfigs},
		{"unknown scheme", func(c *ClientConfig) { c.Storage.Session.DSN = "redis://x" }, ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
