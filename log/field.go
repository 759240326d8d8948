package log

import (
	"fmt"
	"log/slog"
	"time"
)

// Field is one key/value pair attached to a log record. Fields built
// from the constructors below are cheap enough to construct even when
// the record that carries them is ultimately dropped by a level check.
type Field = slog.Attr

// Object wraps an arbitrary value under key, falling back to
// reflection when val has no specialized constructor below. Prefer a
// typed constructor on a hot path.
func Object(key string, val any) Field { return slog.Any(key, val) }

// String builds a string-valued Field.
func String(key, val string) Field { return slog.String(key, val) }

// Strings wraps a string slice under key.
func Strings(key string, val []string) Field { return slog.Any(key, val) }

// Stringer wraps anything implementing fmt.Stringer under key.
func Stringer(key string, val fmt.Stringer) Field { return slog.Any(key, val) }

// Err wraps err under the conventional "error" key.
func Err(err error) Field { return slog.Any("error", err) }

// lazyValue defers computing a field's value until the handler that
// owns the record actually formats it, via slog.LogValuer.
type lazyValue[T any] struct {
	compute func() T
	toValue func(T) slog.Value
}

func (lv lazyValue[T]) LogValue() slog.Value { return lv.toValue(lv.compute()) }

// StringFunc builds a Field whose value is computed by f only if the
// record reaches a handler, avoiding the cost on disabled levels.
func StringFunc(key string, f func() string) Field {
	return slog.Any(key, lazyValue[string]{compute: f, toValue: slog.StringValue})
}

// IntFunc is StringFunc for an int-producing function.
func IntFunc(key string, f func() int) Field {
	return slog.Any(key, lazyValue[int]{compute: f, toValue: slog.IntValue})
}

// Int builds an int-valued Field.
func Int(key string, val int) Field { return slog.Int(key, val) }

// Int64 builds an int64-valued Field.
func Int64(key string, val int64) Field { return slog.Int64(key, val) }

// Int32 builds a Field from a narrower signed int, widened for slog.
func Int32(key string, val int32) Field { return slog.Int64(key, int64(val)) }

// Int16 builds a Field from a narrower signed int, widened for slog.
func Int16(key string, val int16) Field { return slog.Int64(key, int64(val)) }

// Int8 builds a Field from a narrower signed int, widened for slog.
func Int8(key string, val int8) Field { return slog.Int64(key, int64(val)) }

// Uint builds a Field from an unsigned int, widened for slog.
func Uint(key string, val uint) Field { return slog.Uint64(key, uint64(val)) }

// Uint64 builds a uint64-valued Field.
func Uint64(key string, val uint64) Field { return slog.Uint64(key, val) }

// Uint32 builds a Field from a narrower unsigned int, widened for slog.
func Uint32(key string, val uint32) Field { return slog.Uint64(key, uint64(val)) }

// Uint16 builds a Field from a narrower unsigned int, widened for slog.
func Uint16(key string, val uint16) Field { return slog.Uint64(key, uint64(val)) }

// Uint8 builds a Field from a narrower unsigned int, widened for slog.
func Uint8(key string, val uint8) Field { return slog.Uint64(key, uint64(val)) }

// Time builds a time.Time-valued Field.
func Time(key string, val time.Time) Field { return slog.Time(key, val) }

// Duration builds a time.Duration-valued Field.
func Duration(key string, val time.Duration) Field { return slog.Duration(key, val) }

// Bool builds a bool-valued Field.
func Bool(key string, val bool) Field { return slog.Bool(key, val) }

// Float32 builds a Field from a narrower float, widened for slog.
func Float32(key string, val float32) Field { return slog.Float64(key, float64(val)) }

// Float64 builds a float64-valued Field.
func Float64(key string, val float64) Field { return slog.Float64(key, val) }
