// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. Every [*APIError] unwraps to exactly one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNoToken is returned by authenticated calls made before SetToken.
	ErrNoToken = errors.New("no session token")
)

// APIError is a non-2xx answer of the auth API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Key names the offending request field, if the server reported one.
	Key string
	// Message is the server's "error" text, or the status text when the
	// body carried none.
	Message string

	kind error
}

func (e *APIError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: %s (%s)", e.kind, e.Message, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
