// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when the handlers carry
// neither the HTTP router nor the gRPC health handler.
var errNoServersAreCreated = errors.New("no servers are created")
