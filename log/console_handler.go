package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"
)

var _ slog.Handler = (*ConsoleHandler)(nil)

// levelTag is the fixed-width label printed for each severity.
var levelTag = map[Level]string{
	TraceLevel: "TRACE   ",
	DebugLevel: "DEBUG   ",
	InfoLevel:  "INFO    ",
	WarnLevel:  "WARN    ",
	ErrorLevel: "ERROR   ",
	FatalLevel: "FATAL   ",
}

// ConsoleHandlerOptions configures a ConsoleHandler. The zero value
// renders RFC3339 timestamps and no attribute fields are suppressed
// beyond what slog itself reserves.
type ConsoleHandlerOptions struct {
	SlogOptions *slog.HandlerOptions
	TimeFormat  string
}

// ConsoleHandler renders records as a single human-readable line:
// timestamp, padded level, optional source location, message, and any
// structured attributes delegated to an embedded JSON handler.
type ConsoleHandler struct {
	timeFormat string
	addSource  bool
	structured slog.Handler

	mu     sync.Mutex
	writer io.Writer
}

// NewConsoleHandler builds a ConsoleHandler writing to w.
func NewConsoleHandler(w io.Writer, opts *ConsoleHandlerOptions) *ConsoleHandler {
	if opts == nil {
		opts = &ConsoleHandlerOptions{}
	}
	slogOpts := opts.SlogOptions
	if slogOpts == nil {
		slogOpts = &slog.HandlerOptions{}
	}

	format := opts.TimeFormat
	if format == "" {
		format = time.RFC3339
	}

	userReplace := slogOpts.ReplaceAttr
	suppressed := slog.HandlerOptions{
		AddSource: slogOpts.AddSource,
		Level:     slogOpts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey, slog.LevelKey, slog.MessageKey:
				return slog.Attr{}
			}
			if slogOpts.AddSource && a.Key == slog.SourceKey {
				return slog.Attr{}
			}
			if userReplace != nil {
				return userReplace(groups, a)
			}
			return a
		},
	}

	return &ConsoleHandler{
		timeFormat: format,
		addSource:  slogOpts.AddSource,
		writer:     w,
		structured: slog.NewJSONHandler(w, &suppressed),
	}
}

// Enabled reports whether level clears the embedded handler's threshold.
func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.structured.Enabled(ctx, level)
}

// Handle writes one formatted line for r, delegating any attached
// attributes to the JSON handler on the same writer.
func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	var line strings.Builder

	if h.timeFormat != "-" {
		line.WriteString(r.Time.Format(h.timeFormat))
		line.WriteString("  ")
	}
	line.WriteString(levelTag[r.Level])

	if h.addSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			fmt.Fprintf(&line, "%s:%d ", frame.File, frame.Line)
		}
	}
	line.WriteString(r.Message)

	hasAttrs := recordHasAttrs(r)
	if hasAttrs {
		line.WriteRune(' ')
	} else {
		line.WriteRune('\n')
	}

	h.mu.Lock()
	_, writeErr := io.WriteString(h.writer, line.String())
	h.mu.Unlock()
	if writeErr != nil {
		return fmt.Errorf("console handler: %w", writeErr)
	}

	if hasAttrs {
		if err := h.structured.Handle(ctx, r); err != nil {
			return fmt.Errorf("console handler: %w", err)
		}
	}
	return nil
}

func recordHasAttrs(r slog.Record) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" {
			found = true
			return false
		}
		return true
	})
	return found
}

// WithAttrs returns a handler that also carries attrs on every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{
		timeFormat: h.timeFormat,
		addSource:  h.addSource,
		writer:     h.writer,
		structured: h.structured.WithAttrs(attrs),
	}
}

// WithGroup returns a handler that nests subsequent attributes under name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{
		timeFormat: h.timeFormat,
		addSource:  h.addSource,
		writer:     h.writer,
		structured: h.structured.WithGroup(name),
	}
}
