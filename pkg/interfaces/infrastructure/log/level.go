package log

import "github.com/nanoblock/nanogo/pkg/types"

// LogLevel aliases the shared severity type so callers only need to import
// this package.
type LogLevel = types.LogLevel

const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
	FatalLevel = types.FatalLevel
)
