package log

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
)

// TestingT covers the subset of *testing.T / *testing.B this package
// needs to route log records through the test framework.
type TestingT interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
	Helper()
}

// NewTestLogger builds a Logger that writes every record through
// t.Logf, so output only surfaces with `go test -v` or on failure, and
// promotes Logger.Error/Fatal calls into an immediate test failure.
func NewTestLogger(t TestingT) *Logger {
	t.Helper()
	return NewWithConfig(Config{
		CallerInfo: true,
		Level:      DebugLevel,
		Handler:    &failOnErrorHandler{t: t, inner: slog.NewTextHandler(&tWriter{t: t}, &slog.HandlerOptions{Level: DebugLevel})},
	})
}

// failOnErrorHandler delegates formatting to an inner text handler and
// additionally fails the test the first time it sees an error-or-above
// record, so a test doesn't have to assert on log output to catch a
// logged fault.
type failOnErrorHandler struct {
	t     TestingT
	inner slog.Handler
}

func (h *failOnErrorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *failOnErrorHandler) Handle(ctx context.Context, r slog.Record) error {
	err := h.inner.Handle(ctx, r)
	if r.Level >= ErrorLevel {
		h.t.FailNow()
	}
	if err != nil {
		return fmt.Errorf("test handler: %w", err)
	}
	return nil
}

func (h *failOnErrorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &failOnErrorHandler{t: h.t, inner: h.inner.WithAttrs(attrs)}
}

func (h *failOnErrorHandler) WithGroup(name string) slog.Handler {
	return &failOnErrorHandler{t: h.t, inner: h.inner.WithGroup(name)}
}

// tWriter adapts TestingT.Logf to an io.Writer, trimming the trailing
// newline slog always appends since Logf supplies its own.
type tWriter struct {
	t TestingT
}

func (w *tWriter) Write(p []byte) (int, error) {
	n := len(p)
	w.t.Logf("%s", bytes.TrimRight(p, "\n"))
	return n, nil
}
