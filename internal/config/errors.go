// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN or an
	// unsupported session store DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing or placeholder token sign key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, an address that is not an absolute http(s) URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
