package log

// DefaultOptions returns the library's default logging configuration: info
// level, console output, no caller annotation. Callers that want debug
// output or caller info override individual fields.
func DefaultOptions() *Options {
	return &Options{
		Level:        "info",
		ToConsole:    true,
		EnableCaller: false,
	}
}
