package log

import "io"

// discardLevel sits above FatalLevel so every record fails the
// handler's Enabled check regardless of severity.
const discardLevel = FatalLevel + 100

// NewNop returns a Logger that discards everything written to it.
// Components that accept an optional *Logger use this as their
// zero-configuration default.
func NewNop() *Logger {
	return NewWithConfig(Config{
		Output: io.Discard,
		Level:  discardLevel,
	})
}
