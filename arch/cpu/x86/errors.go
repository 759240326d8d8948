package x86

import "errors"

// Sentinel errors raised by the decoder and executor. A step loop or
// reference test matches these with errors.Is/errors.As rather than
// inspecting opcode bytes directly.
var (
	// ErrNilMemory is returned by New when constructed with a nil Memory.
	ErrNilMemory = errors.New("memory is nil")

	// ErrUndefinedOpcode is raised when Step fetches a byte with no
	// dispatch entry. The CPU halts (Running() becomes false) and the
	// wrapped error carries the opcode and physical fetch address.
	ErrUndefinedOpcode = errors.New("undefined opcode")

	// ErrDivisionByZero is raised by DIV/IDIV/AAM when the divisor is
	// zero, and by DIV/IDIV when the quotient does not fit the
	// destination. The CPU halts the same way an undefined opcode does.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidOperand is raised by LDS/LES when their ModR/M names a
	// register instead of memory; the instruction is only defined for
	// a memory source that supplies both an offset and a segment word.
	ErrInvalidOperand = errors.New("invalid operand")
)
