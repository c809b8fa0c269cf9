// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and
// "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	utils.WriteJSON(w, models.LoginResponse{...}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the {"error": message} body used by every failed API
// call. A non-empty key adds the "key" member naming the offending field.
func WriteError(w http.ResponseWriter, statusCode int, key, message string) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Key: key, Error: message}, statusCode)
}
