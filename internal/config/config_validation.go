// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// legacyTokenSignKey is the placeholder secret shipped by earlier releases.
// Tokens signed with it are forgeable by anyone who has read the source.
const legacyTokenSignKey = "your-secret-key-change-in-production"

// validate checks that the merged server configuration can be used at
// startup. Every failed group is reported.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, fmt.Errorf("%w: no HTTP or gRPC address", ErrInvalidServerConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs))
	}

	switch strings.TrimSpace(cfg.App.TokenSignKey) {
	case "":
		errs = append(errs, fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs))
	case legacyTokenSignKey:
		errs = append(errs, fmt.Errorf("%w: placeholder token sign key", ErrInvalidAppConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	var errs []error

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress))
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: non-positive request timeout", ErrInvalidAdapterConfigs))
	}

	if !isSupportedSessionDSN(cfg.Storage.Session.DSN) {
		errs = append(errs, fmt.Errorf("%w: session DSN %q", ErrInvalidStorageConfigs, cfg.Storage.Session.DSN))
	}

	return errors.Join(errs...)
}

func isSupportedSessionDSN(dsn string) bool {
	if dsn == "memory" {
		return true
	}
	for _, scheme := range []string{"sqlite://", "bolt://"} {
		if path, ok := strings.CutPrefix(dsn, scheme); ok {
			return path != ""
		}
	}
	return false
}
