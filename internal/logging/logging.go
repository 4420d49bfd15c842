// Package logging decouples the pipeline from a concrete logging framework.
// Stages receive a Logger; production code wires the logrus adapter and
// tests wire the mock.
package logging

// Logger is the structured logging interface used throughout the pipeline.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a derived logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a derived logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// Fatal logs at fatal level and exits the process.
	Fatal(msg string, fields ...Field)
	Fatalf(format string, args ...interface{})
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}
