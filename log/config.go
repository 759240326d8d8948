package log

import (
	"io"
	"log/slog"
)

// DefaultTimeFormat is used when a Config leaves TimeFormat empty.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// Config controls how NewWithConfig builds a Logger.
type Config struct {
	// CallerInfo, when true, attaches the file:line of the log call site
	// to every record.
	CallerInfo bool

	// Level is the minimum severity a record must have to be emitted.
	Level Level

	// Output receives formatted records when Handler is nil. Defaults to
	// os.Stdout.
	Output io.Writer

	// Handler, if set, replaces the built-in ConsoleHandler entirely.
	Handler slog.Handler

	// TimeFormat controls the console handler's timestamp layout. Use
	// "-" to omit timestamps. Ignored when Handler is set.
	TimeFormat string
}

// DefaultConfig returns a Config seeded with the package's current
// default level and time format, ready to be tweaked before calling
// NewWithConfig.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel(),
		TimeFormat: DefaultTimeFormat,
	}
}
