// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the storefront server and client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request-scoped loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

var configureOnce sync.Once

// configureGlobals sets the zerolog globals shared by every logger: debug
// level and a "func" caller field holding the function name.
func configureGlobals() {
	configureOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
			return runtime.FuncForPC(pc).Name()
		}
		zerolog.CallerFieldName = "func"
	})
}

// New returns a JSON *Logger writing to w. Every entry carries role,
// a timestamp and the calling function.
func New(role string, w io.Writer) *Logger {
	configureGlobals()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger returns the server *Logger writing to os.Stdout.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// NewClientLogger returns a *Logger that appends to logPath so that the
// command-line output of the client stays clean. An empty logPath means a
// "logs" file next to the executable. If the file cannot be opened, output
// goes to os.Stderr.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var w io.Writer = os.Stderr
	if logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		w = logFile
	}

	return New(role, w)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting it.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request's context, or
// zerolog's default logger when none is attached.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx by zerolog's WithContext.
// It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
