// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the go-user-posts server. Every entry is
// a JSON object carrying the component role, a timestamp and the name of
// the calling function. Request-scoped loggers travel in the context and
// are recovered with FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField   = "role"
	callerField = "func"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout and tagged with role,
// such as "server" or "worker". The global level is reset to debug; call
// SetLevel afterwards to raise it.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = callerField
	zerolog.CallerMarshalFunc = callerFuncName

	return &Logger{
		zerolog.New(w).With().
			Str(roleField, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// callerFuncName reports the fully qualified function name instead of
// zerolog's default file:line.
func callerFuncName(pc uintptr, _ string, _ int) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// SetLevel sets the global level by name: trace, debug, info, warn, error,
// fatal, panic or disabled. An empty name means debug.
func SetLevel(level string) error {
	parsed := zerolog.DebugLevel
	if level != "" {
		var err error
		if parsed, err = zerolog.ParseLevel(level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l whose context can be extended without
// touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger attached to ctx by zerolog's WithContext.
// Without one it falls back to zerolog's default logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
