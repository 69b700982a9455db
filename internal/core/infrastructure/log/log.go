// Package log provides the zap-backed Logger used for optional diagnostic
// output from the proof-of-work engine and block lifecycle. Nothing under
// internal/core/infrastructure/crypto requires a logger; callers that
// never construct one pay nothing for this package.
package log

import (
	"fmt"
	"os"

	logconfig "github.com/nanoblock/nanogo/internal/config/log"
	logiface "github.com/nanoblock/nanogo/pkg/interfaces/infrastructure/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger and its sugared counterpart behind the
// logiface.Logger interface.
type Logger struct {
	zapLogger *zap.Logger
	sugar     *zap.SugaredLogger
}

// New builds a Logger from the resolved config: console output at the
// configured level, with caller annotation if requested.
func New(cfg *logconfig.Config) (logiface.Logger, error) {
	opts := cfg.Options()

	encoder := cfg.ConsoleEncoder()
	output := zapcore.AddSync(os.Stderr)
	if !opts.ToConsole {
		output = zapcore.AddSync(os.Stdout)
	}
	core := zapcore.NewCore(encoder, output, zap.NewAtomicLevelAt(cfg.ZapLevel()))

	var zapOpts []zap.Option
	if opts.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	zapLogger := zap.New(core, zapOpts...)
	return &Logger{zapLogger: zapLogger, sugar: zapLogger.Sugar()}, nil
}

// NewNop returns a Logger that discards every entry, for callers that
// don't want diagnostic output but still need something satisfying the
// interface.
func NewNop() logiface.Logger {
	zapLogger := zap.NewNop()
	return &Logger{zapLogger: zapLogger, sugar: zapLogger.Sugar()}
}

func (l *Logger) Debug(msg string)                          { l.sugar.Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(msg string)                           { l.sugar.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(msg string)                           { l.sugar.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(msg string)                          { l.sugar.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }
func (l *Logger) Fatal(msg string)                          { l.sugar.Fatal(msg) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }

// With returns a Logger that annotates every subsequent entry with the
// given key/value pairs, interpreted as alternating keys and values.
func (l *Logger) With(args ...interface{}) logiface.Logger {
	return &Logger{
		zapLogger: l.zapLogger.With(toZapFields(args...)...),
		sugar:     l.sugar.With(args...),
	}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// GetZapLogger exposes the underlying zap logger.
func (l *Logger) GetZapLogger() *zap.Logger {
	return l.zapLogger
}

func toZapFields(args ...interface{}) []zap.Field {
	if len(args)%2 != 0 {
		args = args[:len(args)-1]
	}
	fields := make([]zap.Field, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields = append(fields, zap.Any(key, args[i+1]))
	}
	return fields
}
