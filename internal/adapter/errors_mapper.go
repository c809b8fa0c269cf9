// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for a 2xx response and an [*APIError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return NewAPIError(resp.StatusCode(), body.Key, body.Error)
	}
	if text := strings.TrimSpace(string(resp.Body())); text != "" {
		return NewAPIError(resp.StatusCode(), "", text)
	}
	return NewAPIError(resp.StatusCode(), "", http.StatusText(resp.StatusCode()))
}

// NewAPIError builds the error for a response with statusCode. Unknown
// codes unwrap to ErrUnexpectedStatus.
func NewAPIError(statusCode int, key, message string) *APIError {
	kind, ok := statusErrors[statusCode]
	if !ok {
		kind = ErrUnexpectedStatus
	}
	return &APIError{StatusCode: statusCode, Key: key, Message: message, kind: kind}
}
