// Package rlog adapts go.uber.org/zap to the small Printf-shaped Logger
// interfaces pkg/wavefront and pkg/core declare, so neither package
// imports zap directly and a test can substitute a no-op logger without
// pulling in the production logging stack.
package rlog

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger wraps a *zap.SugaredLogger behind Printf, the one method every
// render-progress consumer in this module actually calls.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a production Logger: JSON-structured, info level, writing to
// stderr.
func New() (*Logger, error) {
	zl, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("rlog: building zap logger: %w", err)
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// NewDevelopment builds a Logger tuned for local runs: console-encoded,
// debug level, caller info.
func NewDevelopment() (*Logger, error) {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("rlog: building zap development logger: %w", err)
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// Printf implements wavefront.Logger by routing through zap's Infof, so
// render-progress lines still pick up zap's timestamp and level fields.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Sync flushes any buffered log entries; callers should defer it right
// after New/NewDevelopment succeeds.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// NoOp is a Logger that discards everything, used by tests and by any
// caller that wants Render's progress reporting silenced without a nil
// interface value floating around.
type NoOp struct{}

func (NoOp) Printf(string, ...interface{}) {}
