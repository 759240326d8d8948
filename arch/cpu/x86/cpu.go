package x86

import (
	"fmt"

	"github.com/kformaniak/emu8086/log"
)

// CPU is a functional emulator for the Intel 8086 microprocessor: given a
// machine-language program resident in memory, it reproduces the
// architectural effects of each instruction (register/flag updates,
// memory I/O, stack and control-flow changes) one Step at a time.
type CPU struct {
	Registers

	memory *Memory
	logger *log.Logger

	// segOverride and repPrefix are ephemeral prefix latches. They are
	// set while consuming a 0x26/0x2E/0x36/0x3E or 0xF2/0xF3 prefix byte
	// and cleared unconditionally once the following instruction has
	// been executed, whether it succeeded or raised an error.
	segOverride Selector
	repPrefix   RepMode

	running bool
	halt    error
}

// New constructs a CPU over the given memory and applies Reset.
func New(memory *Memory, options ...Option) (*CPU, error) {
	if memory == nil {
		return nil, ErrNilMemory
	}

	opts := newOptions(options...)

	c := &CPU{
		memory: memory,
		logger: opts.logger,
	}
	c.Reset()

	if opts.system != "" {
		applySystemDefaults(c, opts.system)
	}

	return c, nil
}

// Reset restores the architectural power-on/reset state (IP=0xFFF0,
// CS=0xF000, SP=0xFFFE, everything else zero) and clears the halt
// condition.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.segOverride = SegNone
	c.repPrefix = RepNone
	c.running = true
	c.halt = nil
}

// Memory returns the CPU's memory.
func (c *CPU) Memory() *Memory {
	return c.memory
}

// Running reports whether the CPU is still willing to execute
// instructions. It becomes false after an undefined opcode or an
// architectural trap (e.g. divide by zero) halts the machine.
func (c *CPU) Running() bool {
	return c.running
}

// HaltError returns the error that halted the CPU, or nil if it is
// still running.
func (c *CPU) HaltError() error {
	return c.halt
}

// halted records a halting condition and stops further execution.
func (c *CPU) halted(err error) error {
	c.running = false
	c.halt = err
	if c.logger != nil {
		c.logger.Warn("cpu halted", log.Err(err))
	}
	return err
}

// physIP returns the physical address of the next byte to fetch at CS:IP.
func (c *CPU) physIP() uint32 {
	return Phys(c.CS, c.IP)
}

// peekByte returns the byte at CS:IP without advancing IP.
func (c *CPU) peekByte() uint8 {
	return c.memory.ReadByte(c.physIP())
}

// fetchByte reads the byte at CS:IP and advances IP by one.
func (c *CPU) fetchByte() uint8 {
	b := c.memory.ReadByte(c.physIP())
	c.IP++
	return b
}

// fetchWord reads the word at CS:IP and advances IP by two.
func (c *CPU) fetchWord() uint16 {
	w := c.memory.ReadWord(c.physIP())
	c.IP += 2
	return w
}

// DebugState renders a human-readable register and flag dump, in the
// spirit of a classic debugger's "r" command.
func (c *CPU) DebugState() string {
	return fmt.Sprintf(
		"AX=%04X BX=%04X CX=%04X DX=%04X SP=%04X BP=%04X SI=%04X DI=%04X\n"+
			"CS=%04X DS=%04X SS=%04X ES=%04X IP=%04X FLAGS=%s",
		c.AX, c.BX, c.CX, c.DX, c.SP, c.BP, c.SI, c.DI,
		c.CS, c.DS, c.SS, c.ES, c.IP, c.Flags.Format())
}
