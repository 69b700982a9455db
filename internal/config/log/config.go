// Package log holds the configuration for this module's diagnostic
// logging. The library itself never writes files or talks to the network;
// this only controls how the optional logger formats and filters the
// progress/cancellation messages the proof-of-work engine and block
// lifecycle emit.
package log

import "go.uber.org/zap/zapcore"

// Options controls the optional diagnostic logger. A caller that never
// supplies a logger never pays for any of this — see
// internal/core/infrastructure/log.NewNop.
type Options struct {
	Level        string `json:"level"`         // debug, info, warn, error
	ToConsole    bool   `json:"to_console"`    // write to stderr
	EnableCaller bool   `json:"enable_caller"` // include call-site in each entry
}

// Config wraps Options with zap-flavored accessors: an Options struct plus
// a thin Config that knows how to turn it into zapcore primitives.
type Config struct {
	options *Options
}

// New returns a Config seeded from defaults, with any non-zero fields in
// override applied on top.
func New(override *Options) *Config {
	opts := DefaultOptions()
	if override != nil {
		if override.Level != "" {
			opts.Level = override.Level
		}
		opts.ToConsole = override.ToConsole
		opts.EnableCaller = override.EnableCaller
	}
	return &Config{options: opts}
}

// Options returns the resolved configuration.
func (c *Config) Options() *Options {
	return c.options
}

// ZapLevel maps the configured textual level to a zapcore.Level, defaulting
// to Info on an unrecognized value.
func (c *Config) ZapLevel() zapcore.Level {
	switch c.options.Level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ConsoleEncoder returns the human-readable encoder used when ToConsole is
// set.
func (c *Config) ConsoleEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
	})
}
