// Package log provides the structured logger used throughout this
// module: a thin, leveled wrapper around log/slog with a human-readable
// console handler as its default output.
package log

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// Logger is a leveled, structured logger safe for concurrent use. Every
// emulator component that needs to report a fault or trace an event
// holds one rather than calling the standard library logger directly.
type Logger struct {
	base       *slog.Logger
	handler    slog.Handler
	level      *slog.LevelVar
	withCaller bool
}

// New builds a Logger using the package's current default level and
// console output.
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel()})
}

// NewWithConfig builds a Logger from an explicit Config. A zero-value
// Handler falls back to a ConsoleHandler writing to cfg.Output (or
// os.Stdout if unset).
func NewWithConfig(cfg Config) *Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(cfg.Level)

	handler := cfg.Handler
	if handler == nil {
		handler = buildConsoleHandler(cfg, levelVar)
	}

	return &Logger{
		base:       slog.New(handler),
		handler:    handler,
		level:      levelVar,
		withCaller: cfg.CallerInfo,
	}
}

func buildConsoleHandler(cfg Config, levelVar *slog.LevelVar) slog.Handler {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	return NewConsoleHandler(output, &ConsoleHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			AddSource:   cfg.CallerInfo,
			Level:       levelVar,
			ReplaceAttr: ReplaceLevelName,
		},
		TimeFormat: timeFormat,
	})
}

// Named returns a child logger that groups subsequent fields under name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{base: l.base.WithGroup(name), handler: l.handler.WithGroup(name), level: l.level, withCaller: l.withCaller}
}

// With returns a child logger carrying the given fields on every record
// it emits; the parent is unaffected.
func (l *Logger) With(fields ...any) *Logger {
	return &Logger{base: l.base.With(fields...), handler: l.handler, level: l.level, withCaller: l.withCaller}
}

// Enabled reports whether a record at level would actually be emitted.
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	return l.handler.Enabled(backgroundIfNil(ctx), level)
}

// Level returns the logger's current minimum severity.
func (l *Logger) Level() Level { return l.level.Level() }

// SetLevel changes the logger's minimum severity in place.
func (l *Logger) SetLevel(level Level) { l.level.Set(level) }

func (l *Logger) Trace(msg string, args ...any) { l.emit(context.Background(), TraceLevel, msg, args) }

func (l *Logger) TraceContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, TraceLevel, msg, args)
}

func (l *Logger) Debug(msg string, args ...any) { l.emit(context.Background(), DebugLevel, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, DebugLevel, msg, args)
}

func (l *Logger) Info(msg string, args ...any) { l.emit(context.Background(), InfoLevel, msg, args) }

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, InfoLevel, msg, args)
}

func (l *Logger) Warn(msg string, args ...any) { l.emit(context.Background(), WarnLevel, msg, args) }

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, WarnLevel, msg, args)
}

func (l *Logger) Error(msg string, args ...any) { l.emit(context.Background(), ErrorLevel, msg, args) }

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, ErrorLevel, msg, args)
}

// Fatal logs at FatalLevel and then terminates the process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.emit(context.Background(), FatalLevel, msg, args)
	processExit()
}

// FatalContext logs at FatalLevel with ctx and then terminates the process.
func (l *Logger) FatalContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, FatalLevel, msg, args)
	processExit()
}

// Log emits a record at an arbitrary level, for callers that compute
// the level dynamically rather than calling a named method.
func (l *Logger) Log(ctx context.Context, level Level, msg string, args ...any) {
	l.emit(ctx, level, msg, args)
}

// emit is the single path every leveled method funnels through: it
// checks the handler's enabled state, builds the slog.Record (capturing
// the caller's PC when configured to), and hands it to the handler.
func (l *Logger) emit(ctx context.Context, level Level, msg string, args []any) {
	ctx = backgroundIfNil(ctx)
	if !l.handler.Enabled(ctx, level) {
		return
	}

	record := slog.Record{Time: time.Now(), Message: msg, Level: level}
	if l.withCaller {
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		record.PC = pcs[0]
	}
	record.Add(args...)
	_ = l.handler.Handle(ctx, record)
}

func backgroundIfNil(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// processExit is overridden by tests so Fatal/FatalContext can be
// exercised without killing the test binary.
var processExit = func() { os.Exit(1) }
