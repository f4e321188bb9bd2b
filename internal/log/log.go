// Package log configures zerolog for the application and exposes the global
// loggers.
package log

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

var (
	// LoggerWithoutCaller is the root logger.
	LoggerWithoutCaller = zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Logger is the root logger with caller annotation.
	Logger = LoggerWithoutCaller.With().Caller().Logger()
)

func Trace() *zerolog.Event { return Logger.Trace() }
func Debug() *zerolog.Event { return Logger.Debug() }
func Info() *zerolog.Event  { return Logger.Info() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }
func Fatal() *zerolog.Event { return Logger.Fatal() }

// Ctx returns the logger associated with ctx.
func Ctx(ctx context.Context) *zerolog.Logger { return zerolog.Ctx(ctx) }

// FromRequest returns the logger associated with a http request.
func FromRequest(r *http.Request) *zerolog.Logger { return hlog.FromRequest(r) }

// WithIDWithoutCaller returns a logger context without caller annotation with
// the request id attached when one is present in ctx.
func WithIDWithoutCaller(ctx context.Context) zerolog.Context {
	c := LoggerWithoutCaller.With()
	if id, ok := hlog.IDFromCtx(ctx); ok {
		c = c.Str("req_id", id.String())
	}
	return c
}
