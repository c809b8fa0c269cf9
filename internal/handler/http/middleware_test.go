// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevposesp/dem01-gatsby-ecommerce-theme/internal/logger"
)

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	tests := []struct {
		name           string
		requestTraceID string
	}{
		{"trace id from request is reused", "my-custom-trace-id"},
		{"trace id generated", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			require.True(t, nextCalled)
			got := rr.Header().Get(traceIDHeader)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New("test", &buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "log: %s", buf.String())

	assert.Equal(t, "/api/auth/login", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, len("short and stout"), entry["size"])
	assert.NotEmpty(t, entry["trace_id"])
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New("test", &buf)}

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.EqualValues(t, http.StatusOK, entry["status"])
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 3, w.size)
}
