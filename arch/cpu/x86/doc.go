// Package x86 implements a step-execution emulator for the Intel 8086
// microprocessor: real-mode segmented memory, the full register and flag
// state, ModR/M-based instruction decoding, and one handler per opcode
// covering arithmetic, data movement, the stack, control flow, string
// operations, I/O stubs, and the BCD/ASCII adjust instructions.
//
// The emulator executes one instruction at a time via Step, returning a
// TraceStep that records the instruction's effect on CPU state. This
// makes it suitable both for running programs to completion with Run and
// for single-step conformance testing against external reference traces.
//
// Example usage:
//
//	mem := x86.NewMemory(nil)
//	cpu, err := x86.New(mem)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cpu.CS, cpu.IP = 0x1000, 0x0000
//	for cpu.Running() {
//	    step, err := cpu.Step()
//	    if err != nil {
//	        break
//	    }
//	    fmt.Println(step)
//	}
package x86
