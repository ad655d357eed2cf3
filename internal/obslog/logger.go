// Package obslog provides the component-scoped structured logger used
// for CLI diagnostics. It is
// deliberately not used for any of the pinned output formats (the
// verbose iteration table, the schedule print format, exit status
// strings): those are a literal contract written directly with fmt.
package obslog

// Logger exposes logging methods for the severity levels used across
// the module.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods, for tests and
// call sites that have no logger configured.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger scoped to component. The output format is
// selected via the APP_ENV environment variable.
func New(component string) Logger {
	return newZerologLogger(component)
}
