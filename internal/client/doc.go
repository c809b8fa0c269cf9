// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line storefront client.
//
// It wires the client services over the HTTP adapter and the session store
// and exposes them as a cobra command tree: account commands that talk to
// the auth API and an open command that walks the route access policy the
// way the storefront navigates.
package client
