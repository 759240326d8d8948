package x86

import (
	"github.com/kformaniak/emu8086/arch"
	"github.com/kformaniak/emu8086/log"
)

// options holds CPU configuration gathered from functional Option values.
type options struct {
	logger *log.Logger
	system arch.System
}

// Option configures a CPU at construction time.
type Option func(*options)

func newOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger attaches a logger used for halt and fault reporting.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSystem selects a named initial-register profile applied after the
// architectural reset. arch.BIOS (or omitting the option) already
// matches the 8086 power-on state; arch.DOS additionally relocates the
// segment registers, stack pointer and entry point to the conventional
// .COM layout.
func WithSystem(system arch.System) Option {
	return func(o *options) {
		o.system = system
	}
}

// applySystemDefaults overrides the post-Reset register state for a
// named system profile.
func applySystemDefaults(c *CPU, system arch.System) {
	switch system {
	case arch.DOS:
		c.CS, c.DS, c.ES = 0x1000, 0x1000, 0x1000
		c.SS = 0x2000
		c.SP = 0xFFFE
		c.IP = 0x0100
		c.Flags.SetInterrupt(true)
	case arch.BIOS, arch.Generic:
		// already the architectural reset state applied by Reset.
	}
}
