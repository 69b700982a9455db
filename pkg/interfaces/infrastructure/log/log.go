// Package log defines the logging interface the rest of this module codes
// against. Concrete loggers live in internal/core/infrastructure/log;
// everything under internal/core/infrastructure/crypto only ever sees this
// interface, so a caller that doesn't want log output never has to
// construct one.
package log

import "go.uber.org/zap"

// Logger is the structured logger accepted by the PoW engine and block
// lifecycle. Every method is safe to call on a no-op implementation.
type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})

	Info(msg string)
	Infof(format string, args ...interface{})

	Warn(msg string)
	Warnf(format string, args ...interface{})

	Error(msg string)
	Errorf(format string, args ...interface{})

	Fatal(msg string)
	Fatalf(format string, args ...interface{})

	// With returns a Logger that annotates every subsequent entry with
	// the given key/value pairs.
	With(args ...interface{}) Logger

	// Sync flushes any buffered log entries.
	Sync() error

	// GetZapLogger exposes the underlying zap logger.
	GetZapLogger() *zap.Logger
}
