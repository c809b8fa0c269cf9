// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		StaticDir      string   `json:"static_dir"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN          string   `json:"dsn"`
			QueryTimeout Duration `json:"query_timeout"`
		} `json:"db,omitempty"`

		Session struct {
			DSN string `json:"dsn"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Access struct {
		AdminPrefixes     []string `json:"admin_prefixes"`
		ProtectedPrefixes []string `json:"protected_prefixes"`
		PublicPrefixes    []string `json:"public_prefixes"`
		LoginPath         string   `json:"login_path"`
		HomePath          string   `json:"home_path"`
		LandingPath       string   `json:"landing_path"`
	} `json:"access,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: jsonCfg.App.TokenSignKey,
			Version:      jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			StaticDir:      jsonCfg.Server.StaticDir,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				QueryTimeout: time.Duration(jsonCfg.Storage.DB.QueryTimeout),
			},
			Session: Session{
				DSN: jsonCfg.Storage.Session.DSN,
			},
		},
		Access: Access{
			AdminPrefixes:     jsonCfg.Access.AdminPrefixes,
			ProtectedPrefixes: jsonCfg.Access.ProtectedPrefixes,
			PublicPrefixes:    jsonCfg.Access.PublicPrefixes,
			LoginPath:         jsonCfg.Access.LoginPath,
			HomePath:          jsonCfg.Access.HomePath,
			LandingPath:       jsonCfg.Access.LandingPath,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s" as well as nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
