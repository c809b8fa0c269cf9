// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the storefront.
//
// It exposes the JSON auth API under /api, the access gate in front of the
// storefront pages, and the middleware shared by both: panic recovery,
// request tracing, access logging, response compression and bearer token
// authentication. Business decisions are delegated to the service layer.
package http
