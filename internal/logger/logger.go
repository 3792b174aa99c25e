// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for go-fin-tracker.
//
// [Logger] embeds zerolog.Logger, so the whole zerolog API is available on
// it. Long-lived components receive a *Logger at construction; request code
// pulls the request-scoped one with [FromContext] or [FromRequest].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// TraceIDFieldName is the field carrying the request trace id on every
	// request-scoped log line.
	TraceIDFieldName = "trace_id"

	roleFieldName      = "role"
	componentFieldName = "component"
)

type Logger struct {
	zerolog.Logger
}

var configureOnce sync.Once

// configure sets the zerolog package globals shared by every logger: debug
// level and a caller field holding the function name instead of file:line.
func configure() {
	configureOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			if fn := runtime.FuncForPC(pc); fn != nil {
				return fn.Name()
			}
			return "unknown"
		}
	})
}

// NewLogger returns a JSON logger on stdout whose lines carry role,
// a timestamp and the calling function.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewConsoleLogger is NewLogger for terminals: human-readable lines on stderr.
func NewConsoleLogger(role string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}, role)
}

func newLogger(w io.Writer, role string) *Logger {
	configure()

	return &Logger{
		zerolog.New(w).With().
			Str(roleFieldName, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// Nop discards everything. Tests use it where output does not matter.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Named returns a child logger tagged with a component name, e.g. "grpc".
func (l *Logger) Named(component string) *Logger {
	return &Logger{l.With().Str(componentFieldName, component).Logger()}
}

// WithTraceID returns a child logger that stamps traceID on every entry.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDFieldName, traceID).Logger()}
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx with zerolog's WithContext.
// It never returns nil: without one, zerolog's disabled logger is used.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
