// Package logging builds the application's structured logger.
//
// Records are JSON encoded and written to stdout and, when a file is
// configured, to a size-rotated log file.
//
//	logger, closer, err := logging.New(logging.Options{Level: "debug", File: "./logs/app.log"}, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	defer closer.Close()
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"pizzashop/internal/pkg/errs"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits of the log file.
const (
	MaxSizeMB  = 50
	MaxBackups = 3
	MaxAgeDays = 7
)

type ctxKey struct{}

// Options configures New. An empty Level means info; an empty File disables the file sink.
type Options struct {
	Service string
	Level   string
	File    string
}

// New returns a JSON logger writing to out and, if opts.File is set, to a rotating file.
// Close the returned closer on shutdown to release the file.
func New(opts Options, out io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rot := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    MaxSizeMB,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays,
		}
		out = io.MultiWriter(out, rot)
		closer = rot
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	if opts.Service != "" {
		logger = logger.With("service", opts.Service)
	}
	return logger, closer, nil
}

// ParseLevel maps debug, info, warn or error (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("log level", err)
	}
	return level, nil
}

// WithCtx stores a logger in ctx.
func WithCtx(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx fetches the logger stored by WithCtx, or fallback.
func FromCtx(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return fallback
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
