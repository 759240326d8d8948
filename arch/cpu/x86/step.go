package x86

import "fmt"

// TraceStep records the register state immediately before and after a
// single executed instruction, for debugging and the reference-test
// harness.
type TraceStep struct {
	IP     uint16 // CS:IP at which the opcode was fetched
	CS     uint16
	Opcode uint8

	Pre  Registers
	Post Registers
}

// String returns a one-line summary in the spirit of a classic
// debugger's trace log.
func (ts TraceStep) String() string {
	return fmt.Sprintf("%04X:%04X %02X AX=%04X BX=%04X CX=%04X DX=%04X SI=%04X DI=%04X SP=%04X BP=%04X FL=%04X",
		ts.CS, ts.IP, ts.Opcode,
		ts.Post.AX, ts.Post.BX, ts.Post.CX, ts.Post.DX,
		ts.Post.SI, ts.Post.DI, ts.Post.SP, ts.Post.BP, uint16(ts.Post.Flags))
}

// DetailedString expands String with only the registers and flags that
// actually changed.
func (ts TraceStep) DetailedString() string {
	result := fmt.Sprintf("%04X:%04X %02X\n", ts.CS, ts.IP, ts.Opcode)
	result += "Registers:\n"

	for _, reg := range []struct {
		name      string
		pre, post uint16
	}{
		{"AX", ts.Pre.AX, ts.Post.AX}, {"BX", ts.Pre.BX, ts.Post.BX},
		{"CX", ts.Pre.CX, ts.Post.CX}, {"DX", ts.Pre.DX, ts.Post.DX},
		{"SI", ts.Pre.SI, ts.Post.SI}, {"DI", ts.Pre.DI, ts.Post.DI},
		{"BP", ts.Pre.BP, ts.Post.BP}, {"SP", ts.Pre.SP, ts.Post.SP},
		{"CS", ts.Pre.CS, ts.Post.CS}, {"DS", ts.Pre.DS, ts.Post.DS},
		{"ES", ts.Pre.ES, ts.Post.ES}, {"SS", ts.Pre.SS, ts.Post.SS},
	} {
		if reg.pre != reg.post {
			result += fmt.Sprintf("  %s: %04X -> %04X\n", reg.name, reg.pre, reg.post)
		}
	}

	if ts.Pre.Flags != ts.Post.Flags {
		result += fmt.Sprintf("Flags: %s -> %s\n", ts.Pre.Flags.Format(), ts.Post.Flags.Format())
	}

	return result
}

// Step consumes any prefix bytes, fetches and dispatches exactly one
// opcode at CS:IP, and returns a trace of the register state before
// and after. Prefix latches are always cleared once the instruction
// completes, whether it succeeded, raised an architectural error like
// a divide fault, or hit an undefined opcode.
func (c *CPU) Step() (TraceStep, error) {
	if !c.running {
		return TraceStep{}, c.halt
	}

	c.consumePrefixes()
	startIP, startCS := c.IP, c.CS
	pre := c.Registers

	opcode := c.fetchByte()
	handler := opcodes[opcode]
	if handler == nil {
		handler = (*CPU).undefined
	}

	err := handler(c)
	c.clearPrefixes()

	return TraceStep{IP: startIP, CS: startCS, Opcode: opcode, Pre: pre, Post: c.Registers}, err
}

// Run steps the CPU until it stops running: HLT, an undefined opcode,
// or an architectural fault such as a divide error.
func (c *CPU) Run() error {
	for c.running {
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
