// Package log implements the structured logger used across this
// emulator's packages: a small wrapper around log/slog with a
// console-friendly default handler and helpers for routing records
// through a *testing.T.
//
// A Logger is built with New (package default level and output) or
// NewWithConfig (explicit Config). Leveled methods mirror slog's
// Debug/Info/Warn/Error plus two additions: TraceLevel for
// per-instruction tracing below DebugLevel, and FatalLevel for the
// handful of call sites that log and then exit the process.
//
//	logger := log.New()
//	logger.Info("loaded image", log.String("path", path), log.Int("bytes", n))
//	logger.Error("decode failed", log.Err(err))
//
// Fields are built with the constructors in field.go (String, Int,
// Err, ...) rather than passed as raw key/value pairs, so a field's
// type is checked against its constructor rather than against slog's
// variadic args at the call site.
//
// Tests that want assertions on emitted records, or that simply want
// log output attributed to the right subtest, use NewTestLogger(t).
package log
