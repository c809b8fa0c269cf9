// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the auth API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Session holds the session store DSN.
	Session Session
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Access is the route table the client navigation service evaluates.
	Access Access
}

// ClientOverrides are values supplied on the client command line. Non-zero
// fields win over every other source.
type ClientOverrides struct {
	Address        string
	RequestTimeout time.Duration
	SessionDSN     string
	JSONFilePath   string
}

// GetClientConfig builds and validates the client configuration from the
// JSON file, the environment and overrides.
func GetClientConfig(overrides ClientOverrides) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withConfig(&StructuredConfig{
			Adapter:      Adapter{HTTPAddress: overrides.Address, RequestTimeout: overrides.RequestTimeout},
			Storage:      Storage{Session: Session{DSN: overrides.SessionDSN}},
			JSONFilePath: overrides.JSONFilePath,
		}).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Session: cfg.Storage.Session,
		},
		Access: cfg.Access,
	}

	return clientCfg, clientCfg.validate()
}
