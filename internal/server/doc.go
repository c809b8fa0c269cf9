// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the storefront auth API and the gRPC health service
// until SIGINT or SIGTERM, then drains both before returning.
package server
