// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/adapter"
)

var adapterCategories = []struct {
	transport error
	category  error
}{
	{adapter.ErrBadRequest, ErrValidation},
	{adapter.ErrUnauthorized, ErrUnauthorized},
	{adapter.ErrForbidden, ErrForbidden},
	{adapter.ErrNotFound, ErrNotFound},
	{adapter.ErrConflict, ErrConflict},
}

// mapAdapterError translates the adapter's transport error into the service
// category carrying the server's message. A field-scoped answer becomes a
// *FieldError.
func mapAdapterError(err error) error {
	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	for _, c := range adapterCategories {
		if !errors.Is(err, c.transport) {
			continue
		}

		mapped := fmt.Errorf("%w: %s", c.category, apiErr.Message)
		if apiErr.Key != "" {
			return fieldError(apiErr.Key, mapped)
		}
		return mapped
	}

	return err
}
