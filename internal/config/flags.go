// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server's command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-query-timeout database query timeout (e.g., "5s")
//	-static-dir directory of the built storefront pages
//	-grant-admin email of the account to promote to admin, then exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var requestTimeout time.Duration
	var queryTimeout time.Duration
	var staticDir string
	var grantAdmin string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&queryTimeout, "query-timeout", 0, "Database query timeout (e.g., 5s)")
	fs.StringVar(&staticDir, "static-dir", "", "Directory of the built storefront pages")
	fs.StringVar(&grantAdmin, "grant-admin", "", "Assign the admin role to this account email and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				QueryTimeout: queryTimeout,
			},
		},
		JSONFilePath:    jsonConfigPath,
		GrantAdminEmail: grantAdmin,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
