package log

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"syscall"
)

// ignorableCloseErrors are error values a Close call commonly returns
// when the underlying resource was already gone, which is the normal
// end state for most teardown paths rather than a fault worth logging.
var ignorableCloseErrors = []error{
	os.ErrClosed,
	net.ErrClosed,
	io.EOF,
	syscall.EBADF,
	syscall.EINVAL,
}

// ignorableCloseSubstrings catches net.OpError wrappers whose message
// text signals the same benign conditions but that Go's net package
// doesn't expose as a matchable sentinel.
var ignorableCloseSubstrings = []string{
	"use of closed network connection",
	"broken pipe",
	"connection reset by peer",
}

// Closer calls closer.Close and logs an error-level record if it
// returns a failure worth reporting. Typical use:
//
//	defer logger.Closer(file, "closing rom file")
func (l *Logger) Closer(closer io.Closer, msg string) {
	if err := closer.Close(); !isIgnorableCloseErr(err) {
		l.Error(msg, Err(err))
	}
}

// closerCtx is implemented by resources whose Close accepts a context,
// such as network listeners with graceful shutdown.
type closerCtx interface {
	Close(ctx context.Context) error
}

// CloserCtx is Closer for a context-aware closer. Deadline and
// cancellation errors are tagged with a reason field.
func (l *Logger) CloserCtx(ctx context.Context, closer closerCtx, msg string) {
	err := closer.Close(ctx)
	if isIgnorableCloseErr(err) {
		return
	}
	l.ErrorContext(ctx, msg, append([]any{Err(err)}, closeReasonFields(err)...)...)
}

// MultiCloser runs Closer over every non-nil entry in closers, tagging
// each logged failure with its index in the slice.
func (l *Logger) MultiCloser(msg string, closers ...io.Closer) {
	for i, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); !isIgnorableCloseErr(err) {
			l.Error(msg, Err(err), Int("closer_index", i))
		}
	}
}

// MultiCloserCtx is MultiCloser for context-aware closers.
func (l *Logger) MultiCloserCtx(ctx context.Context, msg string, closers ...closerCtx) {
	for i, c := range closers {
		if c == nil {
			continue
		}
		err := c.Close(ctx)
		if isIgnorableCloseErr(err) {
			continue
		}
		fields := append([]any{Err(err), Int("closer_index", i)}, closeReasonFields(err)...)
		l.ErrorContext(ctx, msg, fields...)
	}
}

// closeReasonFields adds a human-readable "reason" field for the two
// context errors callers most often want called out explicitly.
func closeReasonFields(err error) []any {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return []any{String("reason", "context deadline exceeded")}
	case errors.Is(err, context.Canceled):
		return []any{String("reason", "context canceled")}
	default:
		return nil
	}
}

// isIgnorableCloseErr reports whether err represents a resource that
// was already closed or a connection that unwound normally, in which
// case logging it would just be noise.
func isIgnorableCloseErr(err error) bool {
	if err == nil {
		return true
	}
	for _, candidate := range ignorableCloseErrors {
		if errors.Is(err, candidate) {
			return true
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		msg := opErr.Err.Error()
		for _, sub := range ignorableCloseSubstrings {
			if strings.Contains(msg, sub) {
				return true
			}
		}
	}
	return false
}
